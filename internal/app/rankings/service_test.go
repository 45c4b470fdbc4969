package rankings

import (
	"testing"

	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
)

type stubStore struct {
	board    domainranking.Board
	hasBoard bool
	page     []byte

	setBoardCalls int
	setPageCalls  int
}

func (s *stubStore) Board() (domainranking.Board, bool) {
	return s.board, s.hasBoard
}

func (s *stubStore) SetBoard(board domainranking.Board) {
	s.setBoardCalls++
	s.board = board
	s.hasBoard = true
}

func (s *stubStore) Page() ([]byte, bool) {
	return s.page, len(s.page) > 0
}

func (s *stubStore) SetPage(page []byte) {
	s.setPageCalls++
	s.page = page
}

func TestServiceBoard(t *testing.T) {
	store := &stubStore{
		board:    domainranking.Board{Players: []string{"Bruno"}},
		hasBoard: true,
	}
	svc := NewService(store)

	board, ok := svc.Board()
	if !ok {
		t.Fatal("expected board to be present")
	}
	if len(board.Players) != 1 || board.Players[0] != "Bruno" {
		t.Fatalf("unexpected board %+v", board)
	}
}

func TestServiceBoardMissing(t *testing.T) {
	svc := NewService(&stubStore{})

	if _, ok := svc.Board(); ok {
		t.Fatal("expected no board")
	}
}

func TestServiceReplaceBoardAndPage(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	svc.ReplaceBoard(domainranking.Board{Players: []string{"Leo"}})
	svc.ReplacePage([]byte("<html></html>"))

	if store.setBoardCalls != 1 || store.setPageCalls != 1 {
		t.Fatalf("expected one replace each, got %d and %d", store.setBoardCalls, store.setPageCalls)
	}

	page, ok := svc.Page()
	if !ok || string(page) != "<html></html>" {
		t.Fatalf("unexpected page %q", page)
	}
}
