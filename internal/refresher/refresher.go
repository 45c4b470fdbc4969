package refresher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/metrics"
	"github.com/galacticos-fc/ranking-service/internal/ranking"
	"github.com/galacticos-fc/ranking-service/internal/registry"
)

const defaultInterval = 15 * time.Minute

// Loader reads the player export and draw sheet from disk.
type Loader interface {
	Load() (registry.Data, error)
}

// Renderer produces the ranking page for a board.
type Renderer interface {
	Render(ctx context.Context, board domainranking.Board) ([]byte, error)
}

// Store receives the outputs of a refresh cycle.
type Store interface {
	SetRoster(players []roster.Player, groups []roster.ConstraintGroup)
	SetBoard(board domainranking.Board)
	SetPage(page []byte)
}

// SnapshotWriter persists board and page snapshots to disk.
type SnapshotWriter interface {
	WriteBoard(board domainranking.Board) error
	WritePage(page []byte) error
}

// Refresher reloads the ranking inputs on an interval: parse the player
// export and draw sheet, rebuild the awards board, render the page, and
// publish everything to the memory store and snapshot directory.
type Refresher struct {
	loader   Loader
	renderer Renderer
	store    Store
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the refresher has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults.
func New(loader Loader, renderer Renderer, store Store, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		loader:   loader,
		renderer: renderer,
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "refresher started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial refresh to warm data on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// RefreshNow runs a single refresh cycle immediately. Callers outside
// the loop (boot warm-up, the admin reload endpoint) get the cycle
// error back; the loop itself only logs it.
func (r *Refresher) RefreshNow(ctx context.Context) error {
	return r.refreshOnce(ctx)
}

func (r *Refresher) refreshOnce(ctx context.Context) error {
	start := time.Now()
	r.recordAttempt(start)

	count, err := r.runCycle(ctx)
	if r.metrics != nil {
		r.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(r.logger, "refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		r.recordFailure(err, start)
		return err
	}

	r.recordSuccess(start)
	logging.Info(r.logger, "ranking refreshed",
		logging.FieldCount, count,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (r *Refresher) runCycle(ctx context.Context) (int, error) {
	data, err := r.loader.Load()
	if err != nil {
		return 0, fmt.Errorf("load registry: %w", err)
	}

	board := ranking.Build(data.Docs, r.now().UTC())
	page, err := r.renderer.Render(ctx, board)
	if err != nil {
		return 0, fmt.Errorf("render page: %w", err)
	}

	r.store.SetRoster(data.Players, data.Groups)
	r.store.SetBoard(board)
	r.store.SetPage(page)

	if r.writer != nil {
		if writeErr := r.writer.WriteBoard(board); writeErr != nil {
			logging.Error(r.logger, "board snapshot write failed", writeErr)
		}
		if writeErr := r.writer.WritePage(page); writeErr != nil {
			logging.Error(r.logger, "page snapshot write failed", writeErr)
		}
	}
	return len(data.Players), nil
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
