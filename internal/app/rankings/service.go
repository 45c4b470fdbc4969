package rankings

import domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"

// Store defines the board and page snapshots the service works with.
type Store interface {
	Board() (domainranking.Board, bool)
	SetBoard(board domainranking.Board)
	Page() ([]byte, bool)
	SetPage(page []byte)
}

// Service coordinates ranking board access using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Board returns the current ranking board, when one has been built.
func (s *Service) Board() (domainranking.Board, bool) {
	return s.store.Board()
}

// Page returns the rendered ranking page, when one has been built.
func (s *Service) Page() ([]byte, bool) {
	return s.store.Page()
}

// ReplaceBoard swaps the board snapshot.
func (s *Service) ReplaceBoard(board domainranking.Board) {
	s.store.SetBoard(board)
}

// ReplacePage swaps the rendered page snapshot.
func (s *Service) ReplacePage(page []byte) {
	s.store.SetPage(page)
}
