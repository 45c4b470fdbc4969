package textgen

import (
	"context"
	"time"

	"github.com/galacticos-fc/ranking-service/internal/metrics"
)

// instrumentedProvider records attempt counts and latency per call.
type instrumentedProvider struct {
	inner   Provider
	name    string
	metrics *metrics.Recorder
}

// NewInstrumentedProvider wraps a provider so every call lands in the recorder.
func NewInstrumentedProvider(inner Provider, name string, recorder *metrics.Recorder) Provider {
	return &instrumentedProvider{inner: inner, name: name, metrics: recorder}
}

func (p *instrumentedProvider) Generate(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	phrase, err := p.inner.Generate(ctx, req)
	p.metrics.RecordTextGenAttempt(p.name, time.Since(start), err)
	return phrase, err
}
