package server

import (
	"log/slog"

	"github.com/galacticos-fc/ranking-service/internal/config"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/snapshots"
	"github.com/galacticos-fc/ranking-service/internal/store"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	basePath := cfg.Snapshots.Folder
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays),
	}
}

// warmStart seeds the in-memory store from the snapshot files so the
// service can answer requests before the first refresh completes.
// Missing files are normal on a fresh install.
func warmStart(ms *store.MemoryStore, snaps snapshots.Store, logger *slog.Logger) {
	if ms == nil || snaps == nil {
		return
	}
	if board, err := snaps.LoadBoard(); err == nil {
		ms.SetBoard(board)
		logging.Info(logger, "restored ranking board from snapshot",
			logging.FieldCount, len(board.Players))
	}
	if page, err := snaps.LoadPage(); err == nil {
		ms.SetPage(page)
	}
	if last, err := snaps.LoadLatestDraw(); err == nil {
		ms.SetLastDraw(last)
		logging.Info(logger, "restored last draw from snapshot",
			slog.String("draw_id", last.ID))
	}
}
