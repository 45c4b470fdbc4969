package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/galacticos-fc/ranking-service/internal/http/handlers"
	"github.com/galacticos-fc/ranking-service/internal/testutil"
)

func newTestHandler() *handlers.Handler {
	svcs := testutil.NewServices()
	return handlers.NewHandler(svcs.Rankings, svcs.Rosters, svcs.Draws, nil, nil)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := NewRouter(newTestHandler())

	// With an empty store most routes answer with a service condition;
	// what matters here is that each path reaches its handler instead
	// of falling through to the root 404.
	cases := map[string]int{
		"/health":     http.StatusOK,
		"/ready":      http.StatusOK,
		"/players":    http.StatusServiceUnavailable,
		"/ranking":    http.StatusServiceUnavailable,
		"/draw":       http.StatusServiceUnavailable,
		"/draws/last": http.StatusNotFound,
		"/":           http.StatusServiceUnavailable,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := NewRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
