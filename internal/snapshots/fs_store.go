package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
)

// Store defines how persisted snapshots are loaded on warm start.
type Store interface {
	LoadBoard() (domainranking.Board, error)
	LoadPage() ([]byte, error)
	LoadLatestDraw() (domaindraw.Result, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadBoard reads the latest awards board from disk.
// The board is expected at {basePath}/ranking/board.json.
func (s *FSStore) LoadBoard() (domainranking.Board, error) {
	if s == nil {
		return domainranking.Board{}, errors.New("snapshot store not configured")
	}
	var board domainranking.Board
	if err := s.decodeFile(BoardPath(s.basePath), &board); err != nil {
		return domainranking.Board{}, err
	}
	return board, nil
}

// LoadPage reads the latest rendered ranking page from disk.
func (s *FSStore) LoadPage() ([]byte, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	return os.ReadFile(PagePath(s.basePath))
}

// LoadDraw reads an archived draw for the given date (YYYY-MM-DD) from disk.
func (s *FSStore) LoadDraw(date string) (domaindraw.Result, error) {
	if s == nil {
		return domaindraw.Result{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domaindraw.Result{}, errors.New("snapshot date required")
	}
	var result domaindraw.Result
	if err := s.decodeFile(DrawSnapshotPath(s.basePath, date), &result); err != nil {
		return domaindraw.Result{}, err
	}
	return result, nil
}

// LoadLatestDraw reads the most recent archived draw listed in the manifest.
func (s *FSStore) LoadLatestDraw() (domaindraw.Result, error) {
	if s == nil {
		return domaindraw.Result{}, errors.New("snapshot store not configured")
	}
	m, err := readManifest(filepath.Join(s.basePath, "manifest.json"), 0)
	if err != nil {
		return domaindraw.Result{}, err
	}
	if len(m.Draws.Dates) == 0 {
		return domaindraw.Result{}, errors.New("no archived draws")
	}
	return s.LoadDraw(m.Draws.Dates[len(m.Draws.Dates)-1])
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
