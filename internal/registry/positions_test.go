package registry

import (
	"testing"

	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/mongoexport"
)

func TestNormalizePosition(t *testing.T) {
	cases := []struct {
		raw      string
		expected roster.Position
	}{
		{"Zagueiro", roster.PositionDefender},
		{"zag", roster.PositionDefender},
		{"Lateral Direito", roster.PositionDefender},
		{"Meia", roster.PositionMidfielder},
		{"Volante", roster.PositionMidfielder},
		{"MEI/LD", roster.PositionMidfielder},
		{"Atacante", roster.PositionForward},
		{"Ponta Esquerda", roster.PositionForward},
		{"ATA", roster.PositionForward},
		{"Goleiro", roster.PositionOther},
		{"  ", roster.PositionOther},
		{"treinador", roster.PositionOther},
	}

	for _, tc := range cases {
		if got := NormalizePosition(tc.raw); got != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.raw, got)
		}
	}
}

func docsFixture() []mongoexport.PlayerDoc {
	return []mongoexport.PlayerDoc{
		{FullName: "Luiz Kelvin", Position: "Zagueiro"},
		{FullName: "Luiz", Position: "Atacante"},
		{FullName: "Matheus Tavares", Position: "Meia"},
		{FullName: "Adelson Souza", Position: "Volante"},
	}
}

func TestFindPlayerExactMatch(t *testing.T) {
	doc, ok := FindPlayer(docsFixture(), "Luiz")
	if !ok {
		t.Fatal("expected a match")
	}
	// "Luiz Kelvin" contains the single query word and is scanned
	// first, so the partial match wins over the later exact one.
	if doc.FullName != "Luiz Kelvin" {
		t.Fatalf("expected first word-containing doc, got %s", doc.FullName)
	}
}

func TestFindPlayerAllWords(t *testing.T) {
	doc, ok := FindPlayer(docsFixture(), "tavares matheus")
	if !ok {
		t.Fatal("expected a match")
	}
	if doc.FullName != "Matheus Tavares" {
		t.Fatalf("expected word-set match, got %s", doc.FullName)
	}
}

func TestFindPlayerFirstWordFallback(t *testing.T) {
	doc, ok := FindPlayer(docsFixture(), "Adelson Ferreira")
	if !ok {
		t.Fatal("expected a fallback match")
	}
	if doc.FullName != "Adelson Souza" {
		t.Fatalf("expected first-word match, got %s", doc.FullName)
	}
}

func TestFindPlayerMiss(t *testing.T) {
	if _, ok := FindPlayer(docsFixture(), "Zico"); ok {
		t.Fatal("expected no match")
	}
	if _, ok := FindPlayer(docsFixture(), "   "); ok {
		t.Fatal("expected no match for blank query")
	}
}

func TestResolvePositionPrecedence(t *testing.T) {
	docs := []mongoexport.PlayerDoc{
		{FullName: "Bruno", Position: "Atacante", PrizeDrawPosition: "Meia"},
	}

	if got := resolvePosition("Bruno", "Zagueiro", docs); got != roster.PositionDefender {
		t.Fatalf("expected sheet override to win, got %s", got)
	}
	if got := resolvePosition("Bruno", "", docs); got != roster.PositionMidfielder {
		t.Fatalf("expected prizeDrawPosition to win over position, got %s", got)
	}

	docs[0].PrizeDrawPosition = ""
	if got := resolvePosition("Bruno", "", docs); got != roster.PositionForward {
		t.Fatalf("expected registered position fallback, got %s", got)
	}

	if got := resolvePosition("Desconhecido", "", docs); got != roster.PositionOther {
		t.Fatalf("expected overflow bucket for unknown player, got %s", got)
	}
}

func TestExpandGroupsAddsAliases(t *testing.T) {
	groups := []roster.ConstraintGroup{{"Arnaldo", "Tavares"}}
	aliases := map[string]string{
		"Matheus Tavares": "Tavares",
		"Tainha":          "Arnaldo",
		"Careca":          "Pedro",
	}

	expanded := expandGroups(groups, aliases)

	if len(expanded) != 1 {
		t.Fatalf("expected 1 group, got %d", len(expanded))
	}
	group := expanded[0]
	for _, name := range []string{"Arnaldo", "Tavares", "Matheus Tavares", "Tainha"} {
		if !group.Contains(name) {
			t.Fatalf("expected group to contain %s, got %v", name, group)
		}
	}
	if group.Contains("Careca") {
		t.Fatalf("expected unrelated alias excluded, got %v", group)
	}
}

func TestExpandGroupsEmpty(t *testing.T) {
	if got := expandGroups(nil, map[string]string{"a": "b"}); got != nil {
		t.Fatalf("expected nil for no groups, got %v", got)
	}
}
