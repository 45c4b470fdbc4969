package teststubs

import (
	"context"
	"sync/atomic"

	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/registry"
)

// StubLoader is a test double for refresher.Loader.
type StubLoader struct {
	Data   registry.Data
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// Load returns the configured data and error while tracking calls.
func (s *StubLoader) Load() (registry.Data, error) {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return registry.Data{}, s.Err
	}
	return s.Data, nil
}

// StubRenderer is a test double for refresher.Renderer.
type StubRenderer struct {
	Page []byte
	Err  error
}

// Render returns the configured page, or a minimal document when unset.
func (s *StubRenderer) Render(ctx context.Context, board domainranking.Board) ([]byte, error) {
	_ = ctx
	_ = board
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Page != nil {
		return s.Page, nil
	}
	return []byte("<html>stub</html>"), nil
}

// StubRankingStore is a test double for refresher.Store. Read its
// fields only after the refresh loop has stopped.
type StubRankingStore struct {
	Players   []roster.Player
	Groups    []roster.ConstraintGroup
	Board     domainranking.Board
	Page      []byte
	BoardSets int
}

// SetRoster records the published roster.
func (s *StubRankingStore) SetRoster(players []roster.Player, groups []roster.ConstraintGroup) {
	s.Players = players
	s.Groups = groups
}

// SetBoard records the published board.
func (s *StubRankingStore) SetBoard(board domainranking.Board) {
	s.Board = board
	s.BoardSets++
}

// SetPage records the published page.
func (s *StubRankingStore) SetPage(page []byte) {
	s.Page = page
}

// StubBoardWriter is a test double for refresher.SnapshotWriter.
type StubBoardWriter struct {
	Boards []domainranking.Board
	Pages  [][]byte
	Err    error
}

// WriteBoard records the board for verification in tests.
func (w *StubBoardWriter) WriteBoard(board domainranking.Board) error {
	if w.Err != nil {
		return w.Err
	}
	w.Boards = append(w.Boards, board)
	return nil
}

// WritePage records the page for verification in tests.
func (w *StubBoardWriter) WritePage(page []byte) error {
	if w.Err != nil {
		return w.Err
	}
	w.Pages = append(w.Pages, page)
	return nil
}
