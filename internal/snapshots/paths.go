package snapshots

import (
	"fmt"
	"path/filepath"
)

// DrawSnapshotPath builds the path to an archived draw for a given date.
func DrawSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "draws", fmt.Sprintf("%s.json", date))
}

// BoardPath builds the path to the latest awards board snapshot.
func BoardPath(basePath string) string {
	return filepath.Join(basePath, "ranking", "board.json")
}

// PagePath builds the path to the latest rendered ranking page.
func PagePath(basePath string) string {
	return filepath.Join(basePath, "ranking", "ranking.html")
}
