package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/galacticos-fc/ranking-service/internal/testutil"
)

type stubReloader struct {
	calls int
	err   error
}

func (s *stubReloader) RefreshNow(ctx context.Context) error {
	_ = ctx
	s.calls++
	return s.err
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminReloadRequiresAuth(t *testing.T) {
	h := NewAdminHandler(&stubReloader{}, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest(""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	testutil.AssertErrorBody(t, rr, "unauthorized")
}

func TestAdminReloadRejectsWrongToken(t *testing.T) {
	h := NewAdminHandler(&stubReloader{}, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest("wrong"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminReloadAlwaysRejectsWithoutConfiguredToken(t *testing.T) {
	h := NewAdminHandler(&stubReloader{}, "", nil)

	// An empty configured token never matches, even an empty bearer.
	req := adminRequest("")
	req.Header.Set("Authorization", "Bearer ")
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), req)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminReloadRequiresPost(t *testing.T) {
	h := NewAdminHandler(&stubReloader{}, "secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/reload", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), req)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestAdminReloadWithoutReloader(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertErrorBody(t, rr, "reload not configured")
}

func TestAdminReloadSurfacesRefreshFailure(t *testing.T) {
	reloader := &stubReloader{err: errors.New("load registry: boom")}
	h := NewAdminHandler(reloader, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	testutil.AssertErrorBody(t, rr, "reload failed")
	if reloader.calls != 1 {
		t.Fatalf("expected one refresh call, got %d", reloader.calls)
	}
}

func TestAdminReloadTriggersRefresh(t *testing.T) {
	reloader := &stubReloader{}
	h := NewAdminHandler(reloader, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
	if reloader.calls != 1 {
		t.Fatalf("expected one refresh call, got %d", reloader.calls)
	}
}
