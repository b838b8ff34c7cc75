package teststubs

import (
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
)

// StubStore is a test double for the games service Store. Configure the
// result fields before use; call counters are safe for concurrent readers.
type StubStore struct {
	CreateErr  error
	GetResult  domaingames.Game
	GetOK      bool
	UpdateErr  error
	DeleteErr  error
	ListResult []domaingames.Game
	Cleared    int
	Length     int

	CreateCalls atomic.Int32
	UpdateCalls atomic.Int32
	DeleteCalls atomic.Int32

	mu         sync.Mutex
	updateName string
	deleteName string
}

// Create echoes game back unless CreateErr is set.
func (s *StubStore) Create(game domaingames.Game) (domaingames.Game, error) {
	s.CreateCalls.Add(1)
	if s.CreateErr != nil {
		return domaingames.Game{}, s.CreateErr
	}
	return game, nil
}

func (s *StubStore) Get(name string) (domaingames.Game, bool) {
	_ = name
	return s.GetResult, s.GetOK
}

// Update echoes updated back unless UpdateErr is set.
func (s *StubStore) Update(name string, updated domaingames.Game) (domaingames.Game, error) {
	s.UpdateCalls.Add(1)
	s.mu.Lock()
	s.updateName = name
	s.mu.Unlock()
	if s.UpdateErr != nil {
		return domaingames.Game{}, s.UpdateErr
	}
	return updated, nil
}

func (s *StubStore) Delete(name string) error {
	s.DeleteCalls.Add(1)
	s.mu.Lock()
	s.deleteName = name
	s.mu.Unlock()
	return s.DeleteErr
}

func (s *StubStore) List() []domaingames.Game { return s.ListResult }
func (s *StubStore) Clear() int               { return s.Cleared }
func (s *StubStore) Len() int                 { return s.Length }

// LastUpdateName returns the key passed to the most recent Update.
func (s *StubStore) LastUpdateName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateName
}

// LastDeleteName returns the key passed to the most recent Delete.
func (s *StubStore) LastDeleteName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteName
}
