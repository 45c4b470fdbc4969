package textgen

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/galacticos-fc/ranking-service/internal/logging"
)

const (
	defaultMaxRetries     = 2
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a Provider with bounded exponential backoff.
type retryingProvider struct {
	inner      Provider
	logger     *slog.Logger
	maxRetries uint64
	initial    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxRetries/initial are <= 0, defaults are used.
func NewRetryingProvider(inner Provider, logger *slog.Logger, maxRetries int, initial time.Duration) Provider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		maxRetries: uint64(maxRetries),
		initial:    initial,
	}
}

func (r *retryingProvider) Generate(ctx context.Context, req Request) (string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial
	// Bounded by retry count, not wall time.
	policy.MaxElapsedTime = 0

	var phrase string
	operation := func() error {
		text, err := r.inner.Generate(ctx, req)
		if err != nil {
			return err
		}
		phrase = text
		return nil
	}
	notify := func(err error, wait time.Duration) {
		logging.Warn(r.logger, "text generation retry",
			slog.String(logging.FieldCategory, req.Category),
			slog.Duration("wait", wait),
			"error", err)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(policy, r.maxRetries), ctx), notify)
	if err != nil {
		return "", err
	}
	return phrase, nil
}
