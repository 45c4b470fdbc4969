package testutil

import (
	"fmt"
	"time"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
)

// PositionBlock returns n players sharing a position, named prefix1..prefixN.
func PositionBlock(prefix string, n int, pos roster.Position) []roster.Player {
	players := make([]roster.Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, roster.Player{
			Name:     fmt.Sprintf("%s%d", prefix, i+1),
			Position: pos,
		})
	}
	return players
}

// DrawablePlayers returns a roster that fills four teams exactly, plus
// two overflow-only players.
func DrawablePlayers() []roster.Player {
	var players []roster.Player
	players = append(players, PositionBlock("Zagueiro ", domaindraw.DefendersPerTeam*domaindraw.TeamCount, roster.PositionDefender)...)
	players = append(players, PositionBlock("Meia ", domaindraw.MidfieldersPerTeam*domaindraw.TeamCount, roster.PositionMidfielder)...)
	players = append(players, PositionBlock("Atacante ", domaindraw.ForwardsPerTeam*domaindraw.TeamCount, roster.PositionForward)...)
	players = append(players, PositionBlock("Goleiro ", 2, roster.PositionOther)...)
	return players
}

// SampleBoard returns a one-category board with four ranked players,
// enough to observe podium truncation.
func SampleBoard(generatedAt time.Time) domainranking.Board {
	return domainranking.Board{
		GeneratedAt: generatedAt,
		Categories: []domainranking.Category{
			{
				Key:  "artilheiro",
				Name: "Artilheiro",
				Entries: []domainranking.Entry{
					{Player: "Bruno Silva", Quantity: 7},
					{Player: "Leo Costa", Quantity: 5},
					{Player: "Rafael Gomes", Quantity: 3},
					{Player: "Diego Martins", Quantity: 1},
				},
			},
		},
		Players: []string{"Bruno Silva", "Leo Costa", "Rafael Gomes", "Diego Martins"},
	}
}

// SampleDraw returns a minimal completed draw with the provided identity.
func SampleDraw(id string, drawnAt time.Time) domaindraw.Result {
	return domaindraw.Result{
		ID:       id,
		DrawnAt:  drawnAt,
		Attempts: 1,
		Teams: []domaindraw.Team{
			{
				Number:    1,
				Players:   []string{"Bruno Silva"},
				Positions: map[string]roster.Position{"Bruno Silva": roster.PositionDefender},
			},
		},
		Overflow: domaindraw.Team{
			Number:    domaindraw.OverflowNumber,
			Players:   []string{"Goleiro 1"},
			Positions: map[string]roster.Position{"Goleiro 1": roster.PositionOther},
		},
	}
}
