package testutil

import (
	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
	"github.com/preston-bernstein/game-management-service/internal/timeutil"
)

// SampleGame returns an active game fixture created on 2023-07-10.
func SampleGame(name string) domaingames.Game {
	return domaingames.NewGame(name, timeutil.NewDate(2023, 7, 10), true)
}

// SampleGames builds one active fixture per name.
func SampleGames(names ...string) []domaingames.Game {
	out := make([]domaingames.Game, 0, len(names))
	for _, n := range names {
		out = append(out, SampleGame(n))
	}
	return out
}
