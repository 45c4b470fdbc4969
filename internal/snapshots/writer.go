package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/timeutil"
)

type snapshotKind string

const (
	kindDraws   snapshotKind = "draws"
	kindRanking snapshotKind = "ranking"
)

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

func (w *Writer) snapshotPath(kind snapshotKind, date string) string {
	switch kind {
	case kindDraws:
		return DrawSnapshotPath(w.basePath, date)
	default:
		return filepath.Join(w.basePath, string(kind), fmt.Sprintf("%s.json", date))
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDraw archives a completed draw under its draw date (YYYY-MM-DD) and
// prunes archives older than the retention window. Later draws on the same
// date replace earlier ones.
func (w *Writer) WriteDraw(result domaindraw.Result) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	when := result.DrawnAt
	if when.IsZero() {
		when = time.Now().UTC()
	}
	date := timeutil.FormatDate(when)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := w.writeFile(DrawSnapshotPath(w.basePath, date), data); err != nil {
		return err
	}
	return w.updateManifest(kindDraws, date)
}

// WriteBoard persists the awards board. Only the latest board is kept.
func (w *Writer) WriteBoard(board domainranking.Board) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return err
	}
	if err := w.writeFile(BoardPath(w.basePath), data); err != nil {
		return err
	}
	return w.updateManifest(kindRanking, "")
}

// WritePage persists the rendered ranking page. Only the latest page is kept.
func (w *Writer) WritePage(page []byte) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if len(page) == 0 {
		return fmt.Errorf("page content required")
	}
	if err := w.writeFile(PagePath(w.basePath), page); err != nil {
		return err
	}
	return w.updateManifest(kindRanking, "")
}

func (w *Writer) writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (w *Writer) updateManifest(kind snapshotKind, date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := time.Now().UTC()

	switch kind {
	case kindDraws:
		dates, err := w.listDates(kind)
		if err != nil {
			return err
		}
		if !containsDate(dates, date) {
			dates = append(dates, date)
		}
		pruned, err := w.pruneOldSnapshots(kind, dates)
		if err != nil {
			return err
		}
		m.Draws.Dates = pruned
		m.Draws.LastRefreshed = now
		m.Retention.DrawsDays = w.retentionDays
	case kindRanking:
		m.Ranking.LastRefreshed = now
	}

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates(kind snapshotKind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		dates []string
		seen  = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(kind snapshotKind, dates []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			path := w.snapshotPath(kind, d)
			_ = os.Remove(path)
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
