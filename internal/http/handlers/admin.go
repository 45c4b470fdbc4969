package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/galacticos-fc/ranking-service/internal/http/requestutil"
	"github.com/galacticos-fc/ranking-service/internal/logging"
)

// Reloader triggers an immediate refresh cycle.
type Reloader interface {
	RefreshNow(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints (e.g., forced reloads).
type AdminHandler struct {
	reloader Reloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reloader Reloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		token:    token,
		logger:   logger,
	}
}

// Reload forces a registry reload and page rebuild.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reload not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.reloader.RefreshNow(r.Context()); err != nil {
		logging.Warn(logger, "admin reload failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "reload failed", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	logging.Info(logger, "admin reload complete")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
