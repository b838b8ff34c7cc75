package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	appgames "github.com/preston-bernstein/game-management-service/internal/app/games"
	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
	"github.com/preston-bernstein/game-management-service/internal/logging"
	"github.com/preston-bernstein/game-management-service/internal/store"
)

const defaultMaxBodyBytes = 1 << 20

// Handler wires HTTP routes to the games service.
type Handler struct {
	svc          *appgames.Service
	logger       *slog.Logger
	maxBodyBytes int64
	draining     atomic.Bool
}

// NewHandler constructs a Handler. maxBodyBytes <= 0 selects the 1 MiB default.
func NewHandler(svc *appgames.Service, logger *slog.Logger, maxBodyBytes int) *Handler {
	limit := int64(maxBodyBytes)
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	return &Handler{
		svc:          svc,
		logger:       logger,
		maxBodyBytes: limit,
	}
}

// StartDraining makes Health and Ready report 503 so load balancers stop
// routing here while in-flight requests finish.
func (h *Handler) StartDraining() {
	h.draining.Store(true)
}

// Draining reports whether StartDraining has been called.
func (h *Handler) Draining() bool {
	return h.draining.Load()
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.Draining() || r.Context().Err() != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic along with the current catalogue size.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.Draining() {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "games": h.svc.Count()}, h.logger)
}

// CreateGame handles POST /v1/games.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	game, err := h.decodeGame(w, r)
	if err != nil {
		logging.Debug(logger, "rejected game payload", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	created, err := h.svc.Create(game)
	if err != nil {
		h.writeStoreError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusCreated, created, logger)
}

// ListGames handles GET /v1/games.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(), loggerFromContext(r, h.logger))
}

// ClearGames handles DELETE /v1/games.
func (h *Handler) ClearGames(w http.ResponseWriter, r *http.Request) {
	h.svc.Clear()
	writeNoContent(w)
}

// GetGame handles GET /v1/games/{name}.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	name, ok := gameName(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid game name", logger)
		return
	}

	game, found := h.svc.Get(name)
	if !found {
		writeError(w, r, http.StatusNotFound, "game not found", logger)
		return
	}
	writeJSON(w, http.StatusOK, game, logger)
}

// UpdateGame handles PUT /v1/games/{name}.
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	name, ok := gameName(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid game name", logger)
		return
	}
	game, err := h.decodeGame(w, r)
	if err != nil {
		logging.Debug(logger, "rejected game payload", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	updated, err := h.svc.Update(name, game)
	if err != nil {
		h.writeStoreError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, updated, logger)
}

// DeleteGame handles DELETE /v1/games/{name}.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	name, ok := gameName(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid game name", logger)
		return
	}

	if err := h.svc.Delete(name); err != nil {
		h.writeStoreError(w, r, err, logger)
		return
	}
	writeNoContent(w)
}

func (h *Handler) decodeGame(w http.ResponseWriter, r *http.Request) (domaingames.Game, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	return decodeGame(r.Body)
}

func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		writeError(w, r, http.StatusConflict, err.Error(), logger)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, store.ErrInvalidName):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	default:
		logging.Error(logger, "unexpected store error", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}
