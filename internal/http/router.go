package http

import (
	nethttp "net/http"

	"github.com/galacticos-fc/ranking-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The page handler owns
// the root pattern and answers unmatched paths with a JSON 404.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/ranking", handler.Ranking)
	mux.HandleFunc("/draw", handler.Draw)
	mux.HandleFunc("/draws/last", handler.LastDraw)
	mux.HandleFunc("/", handler.Page)
	return mux
}
