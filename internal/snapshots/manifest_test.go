package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadManifestReturnsDefaultOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := readManifest(path, 5)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if m.Retention.DrawsDays != 5 {
		t.Fatalf("expected retention fallback to provided, got %d", m.Retention.DrawsDays)
	}
}

func TestWriteManifestFailsWhenPathMissing(t *testing.T) {
	if err := writeManifest(filepath.Join("does-not-exist", "missing"), defaultManifest(3)); err == nil {
		t.Fatalf("expected error when base path missing")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := defaultManifest(7)
	m.Draws.Dates = []string{"2024-06-01"}
	m.Ranking.LastRefreshed = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	if err := writeManifest(dir, m); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	got, err := readManifest(filepath.Join(dir, "manifest.json"), 7)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	assertDatesEqual(t, got.Draws.Dates, []string{"2024-06-01"})
	if !got.Ranking.LastRefreshed.Equal(m.Ranking.LastRefreshed) {
		t.Fatalf("expected ranking refresh to round-trip, got %v", got.Ranking.LastRefreshed)
	}
	if got.Retention.DrawsDays != 7 {
		t.Fatalf("expected retention to round-trip, got %d", got.Retention.DrawsDays)
	}
}
