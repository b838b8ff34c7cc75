package testutil

import (
	"github.com/preston-bernstein/game-management-service/internal/app/games"
	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
	"github.com/preston-bernstein/game-management-service/internal/store"
)

// NewServiceWithGames builds a games service backed by a memory store preloaded with g.
func NewServiceWithGames(g []domaingames.Game) *games.Service {
	svc, _ := NewServiceWithStore(g)
	return svc
}

// NewServiceWithStore is NewServiceWithGames that also returns the backing store.
// Fixtures with duplicate names panic.
func NewServiceWithStore(g []domaingames.Game) (*games.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	for _, game := range g {
		if _, err := ms.Create(game); err != nil {
			panic(err)
		}
	}
	return games.NewService(ms, nil, nil), ms
}
