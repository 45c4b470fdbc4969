package textgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/galacticos-fc/ranking-service/internal/metrics"
)

func TestNewWithoutAPIKeyUsesStatic(t *testing.T) {
	rec := metrics.NewRecorder()
	provider := New(Config{Provider: ProviderGemini}, nil, rec)

	phrase, err := provider.Generate(context.Background(), Request{
		Player:   "Bruno",
		Category: "artilheiro",
		Value:    4,
	})
	if err != nil {
		t.Fatalf("expected no error from the chain, got %v", err)
	}
	if phrase == "" {
		t.Fatal("expected a phrase")
	}
	if got := rec.TextGenCalls(ProviderStatic); got != 1 {
		t.Fatalf("expected the static provider to answer, got %d calls", got)
	}
	if got := rec.TextGenCalls(ProviderGemini); got != 0 {
		t.Fatalf("expected no gemini calls without a key, got %d", got)
	}
}

func TestNewUnknownProviderFallsBackToStatic(t *testing.T) {
	rec := metrics.NewRecorder()
	provider := New(Config{Provider: "oracle"}, nil, rec)

	if _, err := provider.Generate(context.Background(), Request{Player: "Leo", Category: "craque", Value: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := rec.TextGenCalls(ProviderStatic); got != 1 {
		t.Fatalf("expected static call, got %d", got)
	}
}

func TestNewCachesAcrossCalls(t *testing.T) {
	rec := metrics.NewRecorder()
	provider := New(Config{Provider: ProviderStatic}, nil, rec)
	req := Request{Player: "Rafa", Category: "garcom", Value: 6}

	first, _ := provider.Generate(context.Background(), req)
	second, _ := provider.Generate(context.Background(), req)

	if first != second {
		t.Fatalf("expected cached phrase, got %q and %q", first, second)
	}
	if got := rec.TextGenCalls(ProviderStatic); got != 1 {
		t.Fatalf("expected one backend call behind the cache, got %d", got)
	}
}

func TestInstrumentedProviderRecordsAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	inner := &stubProvider{err: errors.New("boom")}
	provider := NewInstrumentedProvider(inner, ProviderGemini, rec)

	if _, err := provider.Generate(context.Background(), Request{Player: "Bruno"}); err == nil {
		t.Fatal("expected error to pass through")
	}

	snap := rec.Snapshot(ProviderGemini)
	if snap.Calls != 1 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastCallLatency < 0 {
		t.Fatalf("expected non-negative latency, got %s", snap.LastCallLatency)
	}
}

func TestNewGeminiRequiresAPIKey(t *testing.T) {
	if _, err := NewGemini(GeminiConfig{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(Request{Player: "Bruno", Category: "artilheiro", Label: "Artilheiro", Value: 4})
	for _, want := range []string{"Bruno", "Artilheiro", "4"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to mention %q, got %q", want, prompt)
		}
	}

	// Falls back to the raw key when no label is set.
	prompt = buildPrompt(Request{Player: "Leo", Category: "xerifao", Value: 2})
	if !strings.Contains(prompt, "xerifao") {
		t.Fatalf("expected prompt to mention the category key, got %q", prompt)
	}
}

func TestCleanPhrase(t *testing.T) {
	cases := map[string]string{
		"\"frase com aspas\"": "frase com aspas",
		"  'frase'  ":         "frase",
		"\n frase limpa \t":   "frase limpa",
		"sem aspas":           "sem aspas",
		"":                    "",
	}
	for input, want := range cases {
		if got := cleanPhrase(input); got != want {
			t.Fatalf("cleanPhrase(%q): expected %q, got %q", input, want, got)
		}
	}
}
