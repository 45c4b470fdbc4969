// Package textgen produces the short praise phrase shown next to each
// category champion. A Gemini-backed provider generates the text; the
// static phrase bank answers whenever Gemini is unconfigured or fails.
package textgen

import (
	"context"
	"log/slog"
	"time"

	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/metrics"
)

// Provider names used in logs and metrics.
const (
	ProviderGemini = "gemini"
	ProviderStatic = "static"
)

// Request identifies the champion line to praise.
type Request struct {
	Player   string
	Category string
	Label    string
	Value    int
}

// Provider produces one praise phrase for a category champion.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Config controls which backend generates phrases and how it is wrapped.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// New assembles the provider chain: the configured backend wrapped with
// retries, call metrics, the static fallback, and an in-memory cache.
// Callers never observe an error from the returned provider.
func New(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) Provider {
	backend, name := selectBackend(cfg, logger)

	chain := NewInstrumentedProvider(backend, name, recorder)
	if name != ProviderStatic {
		chain = NewRetryingProvider(chain, logger, cfg.MaxRetries, 0)
		chain = NewFallbackProvider(chain, NewStatic(), name, logger, recorder)
	}
	return NewCachingProvider(chain)
}

func selectBackend(cfg Config, logger *slog.Logger) (Provider, string) {
	switch cfg.Provider {
	case ProviderStatic:
		return NewStatic(), ProviderStatic
	case ProviderGemini, "":
		if cfg.APIKey == "" {
			logging.Info(logger, "no gemini api key set, using static phrases")
			return NewStatic(), ProviderStatic
		}
		gemini, err := NewGemini(GeminiConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			logging.Warn(logger, "gemini client unavailable, using static phrases", "error", err)
			return NewStatic(), ProviderStatic
		}
		return gemini, ProviderGemini
	default:
		logging.Warn(logger, "unknown textgen provider, using static phrases",
			slog.String(logging.FieldProvider, cfg.Provider))
		return NewStatic(), ProviderStatic
	}
}
