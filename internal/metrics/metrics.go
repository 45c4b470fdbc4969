package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	fallbacks       int
	lastCallLatency time.Duration
}

type drawStats struct {
	runs          int
	failures      int
	totalAttempts int
	lastLatency   time.Duration
}

// Recorder captures lightweight, in-memory metrics about text
// generation and draw runs. It is intentionally simple so it can be
// swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	draws drawStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordTextGenAttempt increments counters for a text generation call
// and stores the last observed latency.
func (r *Recorder) RecordTextGenAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTextGenAttempt(provider, duration, err)
	}
}

// RecordTextGenFallback tracks that a provider failed outright and the
// static phrase bank answered instead.
func (r *Recorder) RecordTextGenFallback(provider string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStatsLocked(provider).fallbacks++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTextGenFallback(provider)
	}
}

// TextGenCalls returns the total attempts recorded for a provider.
func (r *Recorder) TextGenCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// TextGenErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) TextGenErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// TextGenFallbacks returns how often the static bank covered for a provider.
func (r *Recorder) TextGenFallbacks(provider string) int {
	return r.Snapshot(provider).Fallbacks
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	Fallbacks       int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Fallbacks:       stats.fallbacks,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordDraw tracks one draw run: how many shuffle attempts it used
// and whether it produced a result.
func (r *Recorder) RecordDraw(attempts int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.draws.runs++
	r.draws.totalAttempts += attempts
	r.draws.lastLatency = duration
	if err != nil {
		r.draws.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDraw(attempts, duration, err)
	}
}

// DrawRuns returns the total draw runs recorded.
func (r *Recorder) DrawRuns() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draws.runs
}

// DrawFailures returns the draw runs that ended in an error.
func (r *Recorder) DrawFailures() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draws.failures
}

// DrawAttempts returns the total shuffle attempts across all runs.
func (r *Recorder) DrawAttempts() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draws.totalAttempts
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks refresher cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
