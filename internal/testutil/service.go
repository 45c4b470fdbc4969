package testutil

import (
	"math/rand"

	"github.com/galacticos-fc/ranking-service/internal/app/draws"
	"github.com/galacticos-fc/ranking-service/internal/app/rankings"
	"github.com/galacticos-fc/ranking-service/internal/app/rosters"
	"github.com/galacticos-fc/ranking-service/internal/draw"
	"github.com/galacticos-fc/ranking-service/internal/store"
)

// Services bundles the request-facing services over one shared
// in-memory store. Seed the Store before serving requests.
type Services struct {
	Store    *store.MemoryStore
	Rankings *rankings.Service
	Rosters  *rosters.Service
	Draws    *draws.Service
}

// NewServices builds the three request services over a fresh store,
// with a deterministic draw engine and no archiver.
func NewServices() Services {
	ms := store.NewMemoryStore()
	engine := draw.New(draw.Config{Rand: rand.New(rand.NewSource(1))})
	return Services{
		Store:    ms,
		Rankings: rankings.NewService(ms),
		Rosters:  rosters.NewService(ms),
		Draws:    draws.NewService(ms, engine, nil, nil, nil),
	}
}
