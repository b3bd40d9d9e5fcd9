package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodGet, "/health", "")
	expectStatus(t, rr, http.StatusOK)
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %q", rr.Body.String())
	}
}

func TestVersionHandler(t *testing.T) {
	router := SetupRoutes("1.2.3", "2026-08-28T00:00:00Z", nil)

	rr := doRequest(t, router, http.MethodGet, "/version", "")
	expectStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"version":"1.2.3"`) {
		t.Fatalf("unexpected version body: %q", rr.Body.String())
	}
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected supplied request id echoed, got %q", got)
	}

	// a generated id is attached when none is supplied
	rr = doRequest(t, router, http.MethodGet, "/health", "")
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestCORSHeaders(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodGet, "/api/users", "")
	expectStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatalf("expected allowed methods header")
	}
}
