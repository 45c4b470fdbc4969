package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/mongoexport"
)

// Sheet is the draw sheet file kept next to the service: who is in the
// draw, optional position overrides, groups of players that must be
// split across teams, and aliases bridging nicknames to the export's
// full names.
type Sheet struct {
	Players          []string                 `json:"players"`
	Positions        map[string]string        `json:"positions"`
	ConstraintGroups []roster.ConstraintGroup `json:"constraintGroups"`
	Aliases          map[string]string        `json:"aliases"`
}

// Data bundles everything one load pass produces.
type Data struct {
	Docs    []mongoexport.PlayerDoc
	Players []roster.Player
	Groups  []roster.ConstraintGroup
}

// Loader reads the player export and draw sheet from disk.
type Loader struct {
	playersPath string
	sheetPath   string
	logger      *slog.Logger
}

// NewLoader builds a Loader for the given file paths.
func NewLoader(playersPath, sheetPath string, logger *slog.Logger) *Loader {
	return &Loader{
		playersPath: playersPath,
		sheetPath:   sheetPath,
		logger:      logger,
	}
}

// Load parses both files and resolves each sheet player's draw
// position: sheet override first, then the export's prizeDrawPosition,
// then its registered position. Constraint groups come back expanded
// with alias spellings so later checks can use plain name equality.
func (l *Loader) Load() (Data, error) {
	docs, err := mongoexport.ParseFile(l.playersPath)
	if err != nil {
		return Data{}, fmt.Errorf("load players export: %w", err)
	}
	if len(docs) == 0 {
		return Data{}, fmt.Errorf("players export %s: no player documents found", l.playersPath)
	}

	sheet, err := loadSheet(l.sheetPath)
	if err != nil {
		return Data{}, err
	}
	if len(sheet.Players) == 0 {
		return Data{}, fmt.Errorf("draw sheet %s: no players listed", l.sheetPath)
	}

	players := make([]roster.Player, 0, len(sheet.Players))
	for _, name := range sheet.Players {
		players = append(players, roster.Player{
			Name:     name,
			Position: resolvePosition(name, sheet.Positions[name], docs),
			Image:    imageFor(name, docs),
		})
	}

	logging.Info(l.logger, "registry loaded",
		logging.FieldCount, len(players),
		"documents", len(docs),
		"groups", len(sheet.ConstraintGroups))

	return Data{
		Docs:    docs,
		Players: players,
		Groups:  expandGroups(sheet.ConstraintGroups, sheet.Aliases),
	}, nil
}

func loadSheet(path string) (Sheet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("load draw sheet: %w", err)
	}
	var sheet Sheet
	if err := json.Unmarshal(content, &sheet); err != nil {
		return Sheet{}, fmt.Errorf("parse draw sheet %s: %w", path, err)
	}
	return sheet, nil
}

func imageFor(name string, docs []mongoexport.PlayerDoc) string {
	if doc, ok := FindPlayer(docs, name); ok {
		return doc.ImageURL()
	}
	return ""
}
