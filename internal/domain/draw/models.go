package draw

import (
	"time"

	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
)

// Team composition shared by the engine and everyone rendering results.
const (
	TeamCount          = 4
	DefendersPerTeam   = 2
	MidfieldersPerTeam = 1
	ForwardsPerTeam    = 2
	TeamSize           = DefendersPerTeam + MidfieldersPerTeam + ForwardsPerTeam
)

// OverflowNumber labels the fifth, unconstrained team that absorbs
// every player left after the four sides are filled.
const OverflowNumber = TeamCount + 1

// Team is one drawn side.
type Team struct {
	Number    int                        `json:"number"`
	Players   []string                   `json:"players"`
	Positions map[string]roster.Position `json:"positions"`
}

// Result is a completed draw as exposed by /draw.
type Result struct {
	ID       string    `json:"id"`
	DrawnAt  time.Time `json:"drawnAt"`
	Attempts int       `json:"attempts"`
	Teams    []Team    `json:"teams"`
	Overflow Team      `json:"overflow"`
}

// AllPositions flattens the per-team position maps into one lookup.
func (r Result) AllPositions() map[string]roster.Position {
	out := make(map[string]roster.Position)
	for _, team := range r.Teams {
		for name, pos := range team.Positions {
			out[name] = pos
		}
	}
	for name, pos := range r.Overflow.Positions {
		out[name] = pos
	}
	return out
}

// TotalPlayers counts every player the draw placed, overflow included.
func (r Result) TotalPlayers() int {
	total := len(r.Overflow.Players)
	for _, team := range r.Teams {
		total += len(team.Players)
	}
	return total
}
