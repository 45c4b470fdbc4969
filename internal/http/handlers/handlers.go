package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/galacticos-fc/ranking-service/internal/app/draws"
	"github.com/galacticos-fc/ranking-service/internal/app/rankings"
	"github.com/galacticos-fc/ranking-service/internal/app/rosters"
	domainranking "github.com/galacticos-fc/ranking-service/internal/domain/ranking"
	"github.com/galacticos-fc/ranking-service/internal/domain/roster"
	"github.com/galacticos-fc/ranking-service/internal/draw"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/refresher"
)

// Every category truncates to a podium of three on the JSON API.
const rankingTopN = 3

// Handler wires HTTP routes to the application services.
type Handler struct {
	rankings *rankings.Service
	rosters  *rosters.Service
	draws    *draws.Service
	logger   *slog.Logger
	statusFn func() refresher.Status
}

// NewHandler constructs a Handler.
func NewHandler(rankingSvc *rankings.Service, rosterSvc *rosters.Service, drawSvc *draws.Service, logger *slog.Logger, statusFn func() refresher.Status) *Handler {
	return &Handler{
		rankings: rankingSvc,
		rosters:  rosterSvc,
		draws:    drawSvc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Page serves the rendered ranking page. Mounted at the mux root, so it
// also answers for every otherwise-unmatched path with a 404.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	page, ok := h.rankings.Page()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "ranking page not built yet", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "failed to write page", err)
	}
}

// Players returns the eligible roster with resolved positions.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.rosters.Loaded() {
		writeError(w, r, http.StatusServiceUnavailable, "roster not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, roster.NewResponse(h.rosters.Players()), h.logger)
}

// Ranking returns the awards board truncated to the podium per category.
func (h *Handler) Ranking(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	board, ok := h.rankings.Board()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "ranking not available yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, domainranking.NewResponse(board, rankingTopN), h.logger)
}

// Draw runs a fresh team draw and returns the result.
func (h *Handler) Draw(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	result, err := h.draws.Run(r.Context())
	if err != nil {
		h.writeDrawError(w, r, err, logger)
		return
	}
	logging.Info(logger, "draw served",
		logging.FieldAttempts, result.Attempts,
		logging.FieldCount, result.TotalPlayers(),
	)
	writeJSON(w, http.StatusOK, result, logger)
}

// LastDraw returns the most recent draw result.
func (h *Handler) LastDraw(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	result, ok := h.draws.LastDraw()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no draw yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

// writeDrawError maps draw failures onto HTTP statuses: a missing
// roster is a service condition, impossible inputs are the client's.
func (h *Handler) writeDrawError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if errors.Is(err, draws.ErrRosterNotLoaded) {
		writeError(w, r, http.StatusServiceUnavailable, "roster not loaded", logger)
		return
	}
	if insufficient, ok := draw.AsInsufficientPlayersError(err); ok {
		writeError(w, r, http.StatusUnprocessableEntity, insufficient.Error(), logger)
		return
	}
	if unsatisfiable, ok := draw.AsUnsatisfiableConstraintsError(err); ok {
		writeError(w, r, http.StatusUnprocessableEntity, unsatisfiable.Error(), logger)
		return
	}
	logging.Error(logger, "draw failed", err)
	writeError(w, r, http.StatusInternalServerError, "draw failed", logger)
}
