package server

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"

	"github.com/rs/cors"

	"github.com/galacticos-fc/ranking-service/internal/app/draws"
	"github.com/galacticos-fc/ranking-service/internal/app/rankings"
	"github.com/galacticos-fc/ranking-service/internal/app/rosters"
	"github.com/galacticos-fc/ranking-service/internal/config"
	"github.com/galacticos-fc/ranking-service/internal/draw"
	httpserver "github.com/galacticos-fc/ranking-service/internal/http"
	"github.com/galacticos-fc/ranking-service/internal/http/handlers"
	"github.com/galacticos-fc/ranking-service/internal/http/middleware"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/metrics"
	"github.com/galacticos-fc/ranking-service/internal/refresher"
	"github.com/galacticos-fc/ranking-service/internal/registry"
	"github.com/galacticos-fc/ranking-service/internal/renderer"
	"github.com/galacticos-fc/ranking-service/internal/snapshots"
	"github.com/galacticos-fc/ranking-service/internal/store"
	"github.com/galacticos-fc/ranking-service/internal/textgen"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	rankingService *rankings.Service
	rosterService  *rosters.Service
	drawService    *draws.Service
	httpServer     httpServer
	metricsServer  httpServer
	refresher      Refresher
	metricsStop    func(context.Context) error
}

// New constructs a server with default registry, text generation, and
// refresher wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, loader refresher.Loader, pageRenderer refresher.Renderer, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if loader == nil {
		loader = registry.NewLoader(cfg.PlayersFile, cfg.DrawSheetFile, logger)
	}
	if pageRenderer == nil {
		phrases := textgen.New(textgen.Config{
			Provider:   cfg.TextGen.Provider,
			APIKey:     cfg.TextGen.GeminiAPIKey,
			Model:      cfg.TextGen.GeminiModel,
			Timeout:    cfg.TextGen.Timeout,
			MaxRetries: cfg.TextGen.MaxRetries,
		}, logger, recorder)
		pageRenderer = renderer.New(phrases, logger)
	}

	snaps := buildSnapshots(cfg)
	memoryStore, rankingSvc, rosterSvc, drawSvc := buildServices(cfg, snaps.writer, logger, recorder)
	warmStart(memoryStore, snaps.store, logger)

	ref := refresher.New(loader, pageRenderer, memoryStore, snaps.writer, logger, recorder, cfg.RefreshInterval)
	httpSrv := buildHTTPServer(cfg, rankingSvc, rosterSvc, drawSvc, logger, recorder, ref)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		rankingService: rankingSvc,
		rosterService:  rosterSvc,
		drawService:    drawSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		refresher:      ref,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, ref Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		refresher:  ref,
	}
}

func buildServices(cfg config.Config, archive *snapshots.Writer, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *rankings.Service, *rosters.Service, *draws.Service) {
	memoryStore := store.NewMemoryStore()
	engine := draw.New(draw.Config{
		MaxAttempts: cfg.Draw.MaxAttempts,
		Rand:        drawRand(cfg.Draw.Seed),
		Logger:      logger,
	})
	return memoryStore,
		rankings.NewService(memoryStore),
		rosters.NewService(memoryStore),
		draws.NewService(memoryStore, engine, archive, logger, recorder)
}

func drawRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func buildHTTPServer(cfg config.Config, rankingSvc *rankings.Service, rosterSvc *rosters.Service, drawSvc *draws.Service, logger *slog.Logger, recorder *metrics.Recorder, ref Refresher) httpServer {
	var statusFn func() refresher.Status
	if ref != nil {
		statusFn = ref.Status
	}

	handler := handlers.NewHandler(rankingSvc, rosterSvc, drawSvc, logger, statusFn)
	router := httpserver.NewRouter(handler)
	// Mount the admin reload endpoint only when a token is configured.
	if cfg.AdminToken != "" {
		admin := handlers.NewAdminHandler(ref, cfg.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/reload", admin.Reload)
		}
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	// An empty origin list keeps the rs/cors permissive default.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}).Handler(router)
	wrapped := middleware.LoggingMiddleware(logger, recorder, corsHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.startRefresher(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

// startRefresher runs the periodic loop, or a single synchronous load
// when scheduled refresh is disabled.
func (s *Server) startRefresher(ctx context.Context) {
	if s.refresher == nil {
		return
	}
	if s.cfg.RefreshEnabled {
		s.refresher.Start(ctx)
		return
	}
	logging.Info(s.logger, "scheduled refresh disabled, loading registry once")
	if err := s.refresher.RefreshNow(ctx); err != nil {
		logging.Error(s.logger, "initial registry load failed", err)
	}
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.refresher != nil {
		if err := s.refresher.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop refresher", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
