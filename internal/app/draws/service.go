package draws

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domaindraw "github.com/galacticos-fc/ranking-service/internal/domain/draw"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/draw"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/metrics"
)

// ErrRosterNotLoaded is returned when a draw is requested before any
// roster has been loaded into the store.
var ErrRosterNotLoaded = errors.New("roster not loaded")

// Store supplies the roster and records the most recent draw.
type Store interface {
	Roster() ([]roster.Player, []roster.ConstraintGroup)
	SetLastDraw(result domaindraw.Result)
	LastDraw() (domaindraw.Result, bool)
}

// Engine runs one constrained draw over the roster.
type Engine interface {
	Run(players []roster.Player, groups []roster.ConstraintGroup) (domaindraw.Result, error)
}

// Archiver persists draw results for later inspection.
type Archiver interface {
	WriteDraw(result domaindraw.Result) error
}

// Service coordinates draw runs: it feeds the engine the current
// roster, stamps identity onto the result, and archives it.
type Service struct {
	store   Store
	engine  Engine
	archive Archiver
	logger  *slog.Logger
	metrics *metrics.Recorder
	nowFunc func() time.Time
	newID   func() string
}

// NewService constructs a Service. The archiver may be nil, in which
// case results are only kept in memory.
func NewService(store Store, engine Engine, archive Archiver, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		engine:  engine,
		archive: archive,
		logger:  logger,
		metrics: recorder,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
}

// Run executes a fresh draw over the current roster.
func (s *Service) Run(ctx context.Context) (domaindraw.Result, error) {
	players, groups := s.store.Roster()
	if len(players) == 0 {
		return domaindraw.Result{}, ErrRosterNotLoaded
	}

	start := time.Now()
	result, err := s.engine.Run(players, groups)
	s.recordDraw(result, time.Since(start), err)
	if err != nil {
		return domaindraw.Result{}, err
	}

	result.ID = s.newID()
	result.DrawnAt = s.nowFunc().UTC()

	s.store.SetLastDraw(result)
	s.archiveDraw(ctx, result)

	return result, nil
}

// LastDraw returns the most recent draw result, when one exists.
func (s *Service) LastDraw() (domaindraw.Result, bool) {
	return s.store.LastDraw()
}

func (s *Service) recordDraw(result domaindraw.Result, elapsed time.Duration, err error) {
	attempts := result.Attempts
	if err != nil {
		if unsat, ok := draw.AsUnsatisfiableConstraintsError(err); ok {
			attempts = unsat.Attempts
		}
	}
	s.metrics.RecordDraw(attempts, elapsed, err)
}

// archiveDraw writes the result to the archive. A failed write keeps
// the draw usable, so it is logged rather than returned.
func (s *Service) archiveDraw(ctx context.Context, result domaindraw.Result) {
	if s.archive == nil {
		return
	}
	if err := s.archive.WriteDraw(result); err != nil {
		logger := logging.FromContext(ctx)
		if logger == nil {
			logger = s.logger
		}
		logging.Warn(logger, "draw archive failed", slog.String("draw_id", result.ID), "error", err)
	}
}
