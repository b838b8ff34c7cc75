package games

import (
	"errors"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
	"github.com/preston-bernstein/game-management-service/internal/logging"
	"github.com/preston-bernstein/game-management-service/internal/metrics"
	"github.com/preston-bernstein/game-management-service/internal/store"
)

// Store defines the contract for storing and retrieving games by name.
type Store interface {
	Create(game domaingames.Game) (domaingames.Game, error)
	Get(name string) (domaingames.Game, bool)
	Update(name string, updated domaingames.Game) (domaingames.Game, error)
	Delete(name string) error
	List() []domaingames.Game
	Clear() int
	Len() int
}

// Service coordinates game operations using a Store, logging and metering each call.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService constructs a Service with the provided Store. logger and recorder may be nil.
// The games_stored gauge starts from the store's current size.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if store != nil {
		recorder.SetGamesStored(store.Len())
	}
	return &Service{
		store:   store,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Create stores a new game. It fails with store.ErrDuplicateKey when the name is taken.
func (s *Service) Create(game domaingames.Game) (domaingames.Game, error) {
	start := s.now()
	created, err := s.store.Create(game)
	s.record(metrics.OpCreate, start, err)
	if err != nil {
		s.logFailure(game.Name, err)
		return domaingames.Game{}, err
	}
	s.metrics.AddGamesStored(1)
	logging.Info(s.logger, "created game", slog.Any(logging.FieldGame, created))
	return created, nil
}

// Get returns the game stored under name, if any.
func (s *Service) Get(name string) (domaingames.Game, bool) {
	start := s.now()
	game, ok := s.store.Get(name)
	s.record(metrics.OpGet, start, nil)
	if !ok {
		logging.Warn(s.logger, "game not found", slog.String(logging.FieldKey, name))
		return domaingames.Game{}, false
	}
	logging.Info(s.logger, "retrieved game", slog.Any(logging.FieldGame, game))
	return game, true
}

// Update replaces the fields of the game stored under name. It fails with
// store.ErrNotFound when nothing is stored under name.
func (s *Service) Update(name string, updated domaingames.Game) (domaingames.Game, error) {
	start := s.now()
	game, err := s.store.Update(name, updated)
	s.record(metrics.OpUpdate, start, err)
	if err != nil {
		s.logFailure(name, err)
		return domaingames.Game{}, err
	}
	if updated.Name != name {
		// The record stays keyed by name; lookups by the new name will miss it.
		logging.Warn(s.logger, "game name differs from its key",
			slog.String(logging.FieldKey, name),
			slog.String("stored_name", updated.Name),
		)
	}
	logging.Info(s.logger, "updated game", slog.Any(logging.FieldGame, game))
	return game, nil
}

// Delete removes the game stored under name. It fails with store.ErrNotFound
// when nothing is stored under name.
func (s *Service) Delete(name string) error {
	start := s.now()
	err := s.store.Delete(name)
	s.record(metrics.OpDelete, start, err)
	if err != nil {
		s.logFailure(name, err)
		return err
	}
	s.metrics.AddGamesStored(-1)
	logging.Info(s.logger, "deleted game", slog.String(logging.FieldKey, name))
	return nil
}

// List returns every stored game in no particular order.
func (s *Service) List() []domaingames.Game {
	start := s.now()
	games := s.store.List()
	s.record(metrics.OpList, start, nil)
	logging.Info(s.logger, "retrieved all games", slog.Int(logging.FieldCount, len(games)))
	return games
}

// Clear removes every stored game and returns how many were removed.
func (s *Service) Clear() int {
	start := s.now()
	n := s.store.Clear()
	s.record(metrics.OpClear, start, nil)
	s.metrics.AddGamesStored(-n)
	logging.Info(s.logger, "deleted all games", slog.Int(logging.FieldCount, n))
	return n
}

// Count returns the number of stored games.
func (s *Service) Count() int {
	return s.store.Len()
}

func (s *Service) record(op string, start time.Time, err error) {
	s.metrics.RecordStoreOperation(op, s.now().Sub(start), err)
}

// logFailure logs expected outcomes (duplicate, missing, blank name) at warn
// and anything else at error.
func (s *Service) logFailure(name string, err error) {
	attrs := []any{slog.String(logging.FieldKey, name)}
	if keyErr, ok := store.AsKeyError(err); ok {
		attrs = append(attrs, slog.String(logging.FieldOperation, keyErr.Op))
	}
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		logging.Warn(s.logger, "game already exists", attrs...)
	case errors.Is(err, store.ErrNotFound):
		logging.Warn(s.logger, "game not found", attrs...)
	case errors.Is(err, store.ErrInvalidName):
		logging.Warn(s.logger, "game name is blank", attrs...)
	default:
		logging.Error(s.logger, "store operation failed", err, attrs...)
	}
}
