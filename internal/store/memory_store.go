package store

import (
	"sync"

	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
)

// Operation names reported in KeyError.Op.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// MemoryStore keeps games in memory keyed by name. It is safe for concurrent use;
// every method holds the lock for its whole check-then-act.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]domaingames.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domaingames.Game),
	}
}

// Create stores game under game.Name unless that name is blank or already taken.
func (s *MemoryStore) Create(game domaingames.Game) (domaingames.Game, error) {
	if blank(game.Name) {
		return domaingames.Game{}, invalidName(OpCreate, game.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.Name]; exists {
		return domaingames.Game{}, duplicateKey(OpCreate, game.Name)
	}
	s.games[game.Name] = game
	return game, nil
}

// Get retrieves a game by name.
func (s *MemoryStore) Get(name string) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[name]
	return g, ok
}

// Update overwrites the fields of the game stored under name and returns the result.
// The game stays keyed by name even when updated.Name differs.
func (s *MemoryStore) Update(name string, updated domaingames.Game) (domaingames.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.games[name]
	if !ok {
		return domaingames.Game{}, notFound(OpUpdate, name)
	}
	if blank(updated.Name) {
		return domaingames.Game{}, invalidName(OpUpdate, updated.Name)
	}
	existing.Name = updated.Name
	existing.CreationDate = updated.CreationDate
	existing.Active = updated.Active
	s.games[name] = existing
	return existing, nil
}

// Delete removes the game stored under name.
func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[name]; !ok {
		return notFound(OpDelete, name)
	}
	delete(s.games, name)
	return nil
}

// List returns a copy of all stored games in no particular order.
func (s *MemoryStore) List() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	return result
}

// Clear removes every game and returns how many were removed.
func (s *MemoryStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.games)
	s.games = make(map[string]domaingames.Game)
	return n
}

// Len returns the number of stored games.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
