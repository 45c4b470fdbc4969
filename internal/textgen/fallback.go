package textgen

import (
	"context"
	"log/slog"

	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/metrics"
)

// fallbackProvider fails closed: when the primary provider errors out,
// the fallback answers instead and the error never reaches the caller.
type fallbackProvider struct {
	primary  Provider
	fallback Provider
	name     string
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewFallbackProvider wraps primary so that any failure is served by fallback.
func NewFallbackProvider(primary, fallback Provider, name string, logger *slog.Logger, recorder *metrics.Recorder) Provider {
	return &fallbackProvider{
		primary:  primary,
		fallback: fallback,
		name:     name,
		logger:   logger,
		metrics:  recorder,
	}
}

func (f *fallbackProvider) Generate(ctx context.Context, req Request) (string, error) {
	phrase, err := f.primary.Generate(ctx, req)
	if err == nil {
		return phrase, nil
	}

	logging.Warn(f.logger, "text generation failed, using static phrase",
		slog.String(logging.FieldProvider, f.name),
		slog.String(logging.FieldCategory, req.Category),
		"error", err)
	f.metrics.RecordTextGenFallback(f.name)

	return f.fallback.Generate(ctx, req)
}
