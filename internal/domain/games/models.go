package games

import "github.com/preston-bernstein/game-management-service/internal/timeutil"

// Game is the canonical game record managed by the service. Name is its key.
type Game struct {
	Name         string        `json:"name"`
	CreationDate timeutil.Date `json:"creationDate"`
	Active       bool          `json:"active"`
}

// NewGame builds a Game.
func NewGame(name string, created timeutil.Date, active bool) Game {
	return Game{
		Name:         name,
		CreationDate: created,
		Active:       active,
	}
}
