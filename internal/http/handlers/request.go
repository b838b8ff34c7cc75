package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
)

var (
	errEmptyBody   = errors.New("request body required")
	errMissingName = errors.New("game name required")
	errTrailing    = errors.New("request body must contain a single JSON object")
)

func decodeGame(body io.Reader) (domaingames.Game, error) {
	var game domaingames.Game
	if body == nil {
		return game, errEmptyBody
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&game); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return game, errEmptyBody
		case errors.As(err, &maxErr):
			return game, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		default:
			return game, fmt.Errorf("invalid game payload: %v", err)
		}
	}
	if dec.More() {
		return game, errTrailing
	}
	if strings.TrimSpace(game.Name) == "" {
		return game, errMissingName
	}
	return game, nil
}

// gameName returns the {name} path segment.
func gameName(r *http.Request) (string, bool) {
	name := r.PathValue("name")
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}
