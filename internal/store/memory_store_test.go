package store

import (
	"testing"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
)

func TestMemoryStoreRosterRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if s.HasRoster() {
		t.Fatal("expected empty store to report no roster")
	}

	players := []roster.Player{
		{Name: "Bruno", Position: roster.PositionDefender},
		{Name: "Leo", Position: roster.PositionForward},
	}
	groups := []roster.ConstraintGroup{{"Bruno", "Leo"}}
	s.SetRoster(players, groups)

	if !s.HasRoster() {
		t.Fatal("expected roster to be present after set")
	}
	gotPlayers, gotGroups := s.Roster()
	if len(gotPlayers) != 2 || len(gotGroups) != 1 {
		t.Fatalf("expected 2 players and 1 group, got %d and %d", len(gotPlayers), len(gotGroups))
	}
}

func TestMemoryStoreRosterReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.SetRoster([]roster.Player{{Name: "Bruno", Position: roster.PositionDefender}}, nil)

	players, _ := s.Roster()
	players[0].Name = "mutated"

	fresh, _ := s.Roster()
	if fresh[0].Name != "Bruno" {
		t.Fatalf("expected store to remain unchanged, got %s", fresh[0].Name)
	}
}

func TestMemoryStoreBoard(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Board(); ok {
		t.Fatal("expected no board before set")
	}

	s.SetBoard(domainranking.Board{Players: []string{"Bruno"}})

	board, ok := s.Board()
	if !ok {
		t.Fatal("expected board after set")
	}
	if len(board.Players) != 1 || board.Players[0] != "Bruno" {
		t.Fatalf("unexpected board %+v", board)
	}
}

func TestMemoryStorePageReturnsCopy(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Page(); ok {
		t.Fatal("expected no page before set")
	}

	s.SetPage([]byte("<html>v1</html>"))

	page, ok := s.Page()
	if !ok {
		t.Fatal("expected page after set")
	}
	page[6] = 'X'

	fresh, _ := s.Page()
	if string(fresh) != "<html>v1</html>" {
		t.Fatalf("expected store to remain unchanged, got %s", fresh)
	}
}

func TestMemoryStoreLastDraw(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.LastDraw(); ok {
		t.Fatal("expected no draw before set")
	}

	s.SetLastDraw(domaindraw.Result{ID: "draw-1", Attempts: 2})

	result, ok := s.LastDraw()
	if !ok {
		t.Fatal("expected draw after set")
	}
	if result.ID != "draw-1" || result.Attempts != 2 {
		t.Fatalf("unexpected draw %+v", result)
	}
}

func TestMemoryStoreSetRosterReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetRoster([]roster.Player{{Name: "old"}}, []roster.ConstraintGroup{{"old"}})

	s.SetRoster([]roster.Player{{Name: "new"}}, nil)

	players, groups := s.Roster()
	if len(players) != 1 || players[0].Name != "new" {
		t.Fatalf("expected replaced players, got %+v", players)
	}
	if len(groups) != 0 {
		t.Fatalf("expected groups cleared, got %+v", groups)
	}
}
