package textgen

import (
	"context"
	"errors"
	"testing"

	"github.com/galacticos-fc/ranking-service/internal/metrics"
)

type stubProvider struct {
	phrase string
	err    error
	calls  int
}

func (s *stubProvider) Generate(_ context.Context, _ Request) (string, error) {
	s.calls++
	return s.phrase, s.err
}

func TestFallbackUsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubProvider{phrase: "frase do gemini"}
	fallback := &stubProvider{phrase: "frase estática"}
	provider := NewFallbackProvider(primary, fallback, ProviderGemini, nil, nil)

	phrase, err := provider.Generate(context.Background(), Request{Player: "Bruno"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if phrase != "frase do gemini" {
		t.Fatalf("expected primary phrase, got %q", phrase)
	}
	if fallback.calls != 0 {
		t.Fatalf("expected fallback untouched, saw %d calls", fallback.calls)
	}
}

func TestFallbackServesStaticOnError(t *testing.T) {
	rec := metrics.NewRecorder()
	primary := &stubProvider{err: errors.New("quota exceeded")}
	fallback := &stubProvider{phrase: "frase estática"}
	provider := NewFallbackProvider(primary, fallback, ProviderGemini, nil, rec)

	phrase, err := provider.Generate(context.Background(), Request{Player: "Bruno"})
	if err != nil {
		t.Fatalf("expected fallback to swallow the error, got %v", err)
	}
	if phrase != "frase estática" {
		t.Fatalf("expected fallback phrase, got %q", phrase)
	}
	if got := rec.TextGenFallbacks(ProviderGemini); got != 1 {
		t.Fatalf("expected 1 fallback recorded, got %d", got)
	}
}
