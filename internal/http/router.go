package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/game-management-service/internal/http/handlers"
)

// NewRouter registers the game and health routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)

	mux.HandleFunc("POST /v1/games", handler.CreateGame)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("DELETE /v1/games", handler.ClearGames)

	mux.HandleFunc("GET /v1/games/{name}", handler.GetGame)
	mux.HandleFunc("PUT /v1/games/{name}", handler.UpdateGame)
	mux.HandleFunc("DELETE /v1/games/{name}", handler.DeleteGame)
	return mux
}
