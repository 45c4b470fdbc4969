package testutil

import (
	"testing"

	"github.com/galacticos-fc/ranking-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// ArchiveDraw writes a minimal draw snapshot dated to the given day.
func ArchiveDraw(t *testing.T, w *snapshots.Writer, date string) {
	t.Helper()
	if err := writeDrawPayload(w, date); err != nil {
		t.Fatalf("failed to archive draw %s: %v", date, err)
	}
}

func writeDrawPayload(w *snapshots.Writer, date string) error {
	return w.WriteDraw(SampleDraw("draw-"+date, MustParseDate(date)))
}

// DrawPath returns the expected snapshot file path for a draw date.
func DrawPath(w *snapshots.Writer, date string) string {
	return snapshots.DrawSnapshotPath(w.BasePath(), date)
}
