package ranking

import (
	"math"
	"strings"
)

// Profile describes the professional player a league member's season
// most resembles.
type Profile struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Position    string  `json:"position"`
	Description string  `json:"description"`
	Similarity  float64 `json:"similarity"`
}

type referencePlayer struct {
	name        string
	image       string
	position    string
	description string
	stats       map[string]int
}

func (r referencePlayer) profile(similarity float64) Profile {
	return Profile{
		Name:        r.name,
		Image:       r.image,
		Position:    r.position,
		Description: r.description,
		Similarity:  similarity,
	}
}

// referencePlayers are compared in order; the first best score wins.
var referencePlayers = []referencePlayer{
	{
		name:        "Cristiano Ronaldo",
		image:       "https://img.a.transfermarkt.technology/portrait/header/8198-1671435885.jpg",
		position:    "Atacante",
		description: "Maior artilheiro da história, líder nato e vencedor",
		stats: map[string]int{
			KeyGoals:      850,
			KeyAssists:    250,
			KeyWins:       600,
			KeyArtilheiro: 50,
			KeyCraque:     30,
		},
	},
	{
		name:        "Lionel Messi",
		image:       "https://img.a.transfermarkt.technology/portrait/header/28003-1671435885.jpg",
		position:    "Atacante",
		description: "Mestre das assistências e gols, criatividade única",
		stats: map[string]int{
			KeyGoals:      800,
			KeyAssists:    350,
			KeyWins:       550,
			KeyArtilheiro: 45,
			KeyCraque:     40,
			KeyGarcom:     20,
		},
	},
	{
		name:        "Neymar Jr",
		image:       "https://img.a.transfermarkt.technology/portrait/header/68290-1671435885.jpg",
		position:    "Atacante",
		description: "Drible, velocidade e assistências decisivas",
		stats: map[string]int{
			KeyGoals:      400,
			KeyAssists:    280,
			KeyWins:       400,
			KeyArtilheiro: 25,
			KeyCraque:     35,
			KeyGarcom:     15,
		},
	},
	{
		name:        "Kevin De Bruyne",
		image:       "https://img.a.transfermarkt.technology/portrait/header/88755-1671435885.jpg",
		position:    "Meia",
		description: "Maestro do meio-campo, rei das assistências",
		stats: map[string]int{
			KeyGoals:   150,
			KeyAssists: 300,
			KeyWins:    450,
			KeyGarcom:  50,
			KeyCraque:  45,
		},
	},
	{
		name:        "Manuel Neuer",
		image:       "https://img.a.transfermarkt.technology/portrait/header/26399-1671435885.jpg",
		position:    "Goleiro",
		description: "Goleiro moderno, líder da defesa",
		stats: map[string]int{
			KeyWins:    500,
			KeyMuralha: 200,
			KeyXerifao: 30,
		},
	},
	{
		name:        "Virgil van Dijk",
		image:       "https://img.a.transfermarkt.technology/portrait/header/5925-1671435885.jpg",
		position:    "Zagueiro",
		description: "Muralha defensiva, líder da zaga",
		stats: map[string]int{
			KeyWins:    400,
			KeyMuralha: 150,
			KeyXerifao: 40,
		},
	},
	{
		name:        "Luka Modrić",
		image:       "https://img.a.transfermarkt.technology/portrait/header/30972-1671435885.jpg",
		position:    "Meia",
		description: "Meia completo, controle de jogo e visão",
		stats: map[string]int{
			KeyGoals:   100,
			KeyAssists: 200,
			KeyWins:    500,
			KeyCraque:  50,
			KeyGarcom:  30,
		},
	},
	{
		name:        "Kylian Mbappé",
		image:       "https://img.a.transfermarkt.technology/portrait/header/342229-1671435885.jpg",
		position:    "Atacante",
		description: "Velocidade, gols e impacto decisivo",
		stats: map[string]int{
			KeyGoals:      300,
			KeyAssists:    150,
			KeyWins:       350,
			KeyArtilheiro: 30,
			KeyCraque:     25,
		},
	},
}

// matchThreshold is the minimum mean similarity a comparison must
// reach before it beats the style heuristics.
const matchThreshold = 0.3

// MatchProfile finds the reference player whose stat profile most
// resembles stats. Similarity per shared stat is the ratio of the
// smaller value to the larger; a player's score is the mean across
// shared stats. Weak matches fall back to style heuristics.
func MatchProfile(stats map[string]int) Profile {
	var best Profile
	bestScore := 0.0

	for _, ref := range referencePlayers {
		score := 0.0
		matches := 0
		for stat, value := range stats {
			refValue, ok := ref.stats[stat]
			if !ok || refValue <= 0 {
				continue
			}
			if value > 0 {
				a, b := float64(value), float64(refValue)
				score += math.Min(a/b, b/a)
			}
			matches++
		}
		if matches == 0 {
			continue
		}
		if mean := score / float64(matches); mean > bestScore {
			bestScore = mean
			best = ref.profile(mean)
		}
	}

	if best.Name == "" || bestScore < matchThreshold {
		return heuristicProfile(stats)
	}
	return best
}

// heuristicProfile picks a reference player from playing style when no
// stat profile comes close: pure scorers get Cristiano Ronaldo,
// playmakers Kevin De Bruyne, goalkeepers Manuel Neuer, and everyone
// else Luka Modrić.
func heuristicProfile(stats map[string]int) Profile {
	goals := float64(stats[KeyGoals])
	assists := float64(stats[KeyAssists])

	switch {
	case goals > assists*2:
		return referenceByName("Cristiano Ronaldo")
	case assists > goals*1.5:
		return referenceByName("Kevin De Bruyne")
	case hasGoalkeeperStat(stats):
		return referenceByName("Manuel Neuer")
	default:
		return referenceByName("Luka Modrić")
	}
}

func hasGoalkeeperStat(stats map[string]int) bool {
	for key := range stats {
		if strings.Contains(key, "goleiro") {
			return true
		}
	}
	return false
}

func referenceByName(name string) Profile {
	for _, ref := range referencePlayers {
		if ref.name == name {
			return ref.profile(0)
		}
	}
	return Profile{}
}
