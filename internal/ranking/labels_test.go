package ranking

import "testing"

func TestDisplayName(t *testing.T) {
	if got := DisplayName(KeyXerifao); got != "Xerifão" {
		t.Fatalf("expected Xerifão, got %s", got)
	}
	if got := DisplayName(GoalkeeperPrefix + KeyGames); got != "Partidas (Goleiros)" {
		t.Fatalf("expected goalkeeper label, got %s", got)
	}
	if got := DisplayName("fairPlay"); got != "FairPlay" {
		t.Fatalf("expected capitalized fallback, got %s", got)
	}
	if got := DisplayName(""); got != "" {
		t.Fatalf("expected empty passthrough, got %q", got)
	}
}

func TestIcon(t *testing.T) {
	if got := Icon(KeyArtilheiro); got != "⚽" {
		t.Fatalf("expected ball icon, got %s", got)
	}
	if got := Icon("fairPlay"); got != "🏆" {
		t.Fatalf("expected trophy fallback, got %s", got)
	}
}
