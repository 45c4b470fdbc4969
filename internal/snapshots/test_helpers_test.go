package snapshots

import (
	"os"
	"testing"
	"time"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/timeutil"
)

func drawOn(t *testing.T, date string) domaindraw.Result {
	t.Helper()
	when, err := timeutil.ParseDate(date)
	if err != nil {
		t.Fatalf("bad fixture date %s: %v", date, err)
	}
	return domaindraw.Result{
		ID:       "draw-" + date,
		DrawnAt:  when,
		Attempts: 1,
		Teams: []domaindraw.Team{
			{
				Number:    1,
				Players:   []string{"Bruno Silva"},
				Positions: map[string]roster.Position{"Bruno Silva": roster.PositionDefender},
			},
		},
	}
}

func archiveDraw(t *testing.T, w *Writer, date string) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	if err := w.WriteDraw(drawOn(t, date)); err != nil {
		t.Fatalf("failed to archive draw %s: %v", date, err)
	}
}

func simpleBoard(generatedAt time.Time) domainranking.Board {
	return domainranking.Board{
		GeneratedAt: generatedAt,
		Categories: []domainranking.Category{
			{
				Key:  "artilheiro",
				Name: "Artilheiro",
				Entries: []domainranking.Entry{
					{Player: "Bruno Silva", Quantity: 5},
				},
			},
		},
		Players: []string{"Bruno Silva"},
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil when asserting snapshot for %s", date)
	}
	path := DrawSnapshotPath(w.BasePath(), date)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected draw archive for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
