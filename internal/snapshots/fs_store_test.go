package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/galacticos-fc/ranking-service/internal/timeutil"
)

func TestFSStoreLoadBoardAndPage(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)

	board := simpleBoard(time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC))
	if err := w.WriteBoard(board); err != nil {
		t.Fatalf("failed to write board: %v", err)
	}
	if err := w.WritePage([]byte("<html>ranking</html>")); err != nil {
		t.Fatalf("failed to write page: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadBoard()
	if err != nil {
		t.Fatalf("failed to load board: %v", err)
	}
	if !got.GeneratedAt.Equal(board.GeneratedAt) || len(got.Categories) != 1 {
		t.Fatalf("unexpected board: %+v", got)
	}

	page, err := store.LoadPage()
	if err != nil {
		t.Fatalf("failed to load page: %v", err)
	}
	if string(page) != "<html>ranking</html>" {
		t.Fatalf("unexpected page: %s", page)
	}
}

func TestFSStoreLoadDraw(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "draws"), 0o755); err != nil {
		t.Fatalf("failed to create draws dir: %v", err)
	}

	snap := drawOn(t, "2024-01-02")
	data, _ := json.Marshal(snap)
	if err := os.WriteFile(filepath.Join(dir, "draws", "2024-01-02.json"), data, 0o644); err != nil {
		t.Fatalf("failed to write draw archive: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadDraw("2024-01-02")
	if err != nil {
		t.Fatalf("failed to load draw: %v", err)
	}
	if got.ID != "draw-2024-01-02" || len(got.Teams) != 1 {
		t.Fatalf("unexpected draw: %+v", got)
	}
}

func TestFSStoreLoadLatestDraw(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)

	older := timeutil.FormatDate(time.Now().AddDate(0, 0, -2))
	newest := timeutil.FormatDate(time.Now())
	archiveDraw(t, w, older)
	archiveDraw(t, w, newest)

	store := NewFSStore(dir)
	got, err := store.LoadLatestDraw()
	if err != nil {
		t.Fatalf("failed to load latest draw: %v", err)
	}
	if got.ID != "draw-"+newest {
		t.Fatalf("expected latest draw for %s, got %s", newest, got.ID)
	}
}

func TestFSStoreLoadLatestDrawWithoutArchives(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	if err := w.WriteBoard(simpleBoard(time.Now().UTC())); err != nil {
		t.Fatalf("failed to write board: %v", err)
	}

	store := NewFSStore(dir)
	if _, err := store.LoadLatestDraw(); err == nil {
		t.Fatalf("expected error when manifest lists no draws")
	}
}

func TestFSStoreErrors(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadBoard(); err == nil {
		t.Fatalf("expected error for missing board")
	}
	if _, err := store.LoadPage(); err == nil {
		t.Fatalf("expected error for missing page")
	}
	if _, err := store.LoadDraw(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
	if _, err := store.LoadDraw("2024-01-01"); err == nil {
		t.Fatalf("expected error for missing draw archive")
	}
	if _, err := store.LoadLatestDraw(); err == nil {
		t.Fatalf("expected error when no manifest exists")
	}

	var nilStore *FSStore
	if _, err := nilStore.LoadBoard(); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := nilStore.LoadPage(); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := nilStore.LoadDraw("2024-01-01"); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := nilStore.LoadLatestDraw(); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestDecodeFileError(t *testing.T) {
	dir := t.TempDir()
	path := BoardPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	store := NewFSStore(dir)
	if _, err := store.LoadBoard(); err == nil {
		t.Fatalf("expected decode error")
	}
}
