package store

import (
	"sync"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
)

// MemoryStore keeps thread-safe snapshots of the roster, the ranking
// board, the rendered page and the most recent draw.
type MemoryStore struct {
	mu       sync.RWMutex
	players  []roster.Player
	groups   []roster.ConstraintGroup
	board    domainranking.Board
	hasBoard bool
	page     []byte
	lastDraw domaindraw.Result
	hasDraw  bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetRoster replaces the eligible players and constraint groups.
func (s *MemoryStore) SetRoster(players []roster.Player, groups []roster.ConstraintGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = append([]roster.Player(nil), players...)
	s.groups = append([]roster.ConstraintGroup(nil), groups...)
}

// Roster returns a copy of the current players and constraint groups.
func (s *MemoryStore) Roster() ([]roster.Player, []roster.ConstraintGroup) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := append([]roster.Player(nil), s.players...)
	groups := append([]roster.ConstraintGroup(nil), s.groups...)
	return players, groups
}

// HasRoster reports whether a roster has been loaded.
func (s *MemoryStore) HasRoster() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.players) > 0
}

// SetBoard replaces the ranking board snapshot.
func (s *MemoryStore) SetBoard(board domainranking.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = board
	s.hasBoard = true
}

// Board returns the current ranking board, when one has been built.
func (s *MemoryStore) Board() (domainranking.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.board, s.hasBoard
}

// SetPage replaces the rendered ranking page.
func (s *MemoryStore) SetPage(page []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page = append([]byte(nil), page...)
}

// Page returns a copy of the rendered ranking page.
func (s *MemoryStore) Page() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.page) == 0 {
		return nil, false
	}
	return append([]byte(nil), s.page...), true
}

// SetLastDraw records the most recent draw result.
func (s *MemoryStore) SetLastDraw(result domaindraw.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastDraw = result
	s.hasDraw = true
}

// LastDraw returns the most recent draw result, when one exists.
func (s *MemoryStore) LastDraw() (domaindraw.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastDraw, s.hasDraw
}
