package ranking

import (
	"math"
	"testing"
)

func TestMatchProfileExactMatch(t *testing.T) {
	stats := map[string]int{
		KeyGoals:      400,
		KeyAssists:    280,
		KeyWins:       400,
		KeyArtilheiro: 25,
		KeyCraque:     35,
		KeyGarcom:     15,
	}

	profile := MatchProfile(stats)

	if profile.Name != "Neymar Jr" {
		t.Fatalf("expected Neymar Jr, got %s", profile.Name)
	}
	if math.Abs(profile.Similarity-1.0) > 1e-9 {
		t.Fatalf("expected similarity 1.0, got %f", profile.Similarity)
	}
	if profile.Image == "" || profile.Description == "" {
		t.Fatalf("expected populated profile, got %+v", profile)
	}
}

func TestMatchProfileWeakMatchUsesScorerHeuristic(t *testing.T) {
	// Tiny numbers compared to any reference: best mean similarity is
	// far under the threshold, so the goals-heavy heuristic kicks in.
	profile := MatchProfile(map[string]int{KeyGoals: 3, KeyAssists: 1})

	if profile.Name != "Cristiano Ronaldo" {
		t.Fatalf("expected Cristiano Ronaldo, got %s", profile.Name)
	}
	if profile.Similarity != 0 {
		t.Fatalf("expected zero similarity from heuristic, got %f", profile.Similarity)
	}
}

func TestMatchProfilePlaymakerHeuristic(t *testing.T) {
	profile := MatchProfile(map[string]int{KeyGoals: 2, KeyAssists: 4})

	if profile.Name != "Kevin De Bruyne" {
		t.Fatalf("expected Kevin De Bruyne, got %s", profile.Name)
	}
}

func TestMatchProfileGoalkeeperHeuristic(t *testing.T) {
	profile := MatchProfile(map[string]int{GoalkeeperPrefix + KeyWins: 10})

	if profile.Name != "Manuel Neuer" {
		t.Fatalf("expected Manuel Neuer, got %s", profile.Name)
	}
}

func TestMatchProfileDefaultHeuristic(t *testing.T) {
	if profile := MatchProfile(map[string]int{KeyGames: 12}); profile.Name != "Luka Modrić" {
		t.Fatalf("expected Luka Modrić, got %s", profile.Name)
	}
	if profile := MatchProfile(nil); profile.Name != "Luka Modrić" {
		t.Fatalf("expected Luka Modrić for empty stats, got %s", profile.Name)
	}
}
