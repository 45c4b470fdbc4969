package server

import (
	"testing"
	"time"

	"github.com/galacticos-fc/ranking-service/internal/snapshots"
	"github.com/galacticos-fc/ranking-service/internal/store"
	"github.com/galacticos-fc/ranking-service/internal/testutil"
)

func TestZZProbeWarmStartRecentDraw(t *testing.T) {
	folder := t.TempDir()
	writer := snapshots.NewWriter(folder, 0)

	draw := testutil.SampleDraw("draw-recent", time.Now().UTC())
	if err := writer.WriteDraw(draw); err != nil {
		t.Fatalf("write draw: %v", err)
	}

	ms := store.NewMemoryStore()
	warmStart(ms, snapshots.NewFSStore(folder), nil)

	last, ok := ms.LastDraw()
	t.Logf("ok=%v last.ID=%q", ok, last.ID)
	if !ok || last.ID != "draw-recent" {
		t.Fatalf("recent draw did not restore: ok=%v last=%+v", ok, last)
	}
}
