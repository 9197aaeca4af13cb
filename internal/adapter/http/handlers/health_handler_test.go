package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(check StorageCheck) *gin.Engine {
		h := NewHealthHandler(check)
		r := gin.New()
		r.GET("/api/v1/ping", h.Ping)
		r.GET("/liveness", h.Liveness)
		r.GET("/readiness", h.Readiness)
		r.GET("/health", h.Health)
		return r
	}

	t.Run("healthy without a storage check", func(t *testing.T) {
		r := newEngine(nil)
		for _, path := range []string{"/api/v1/ping", "/liveness", "/readiness", "/health"} {
			if w := do(r, http.MethodGet, path, ""); w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		r := newEngine(func(context.Context) error { return errors.New("table not found") })

		w := do(r, http.MethodGet, "/readiness", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "not_ready" {
			t.Fatalf("unexpected status: %v", body["status"])
		}

		if w := do(r, http.MethodGet, "/liveness", ""); w.Code != http.StatusOK {
			t.Fatalf("liveness must not depend on storage, got %d", w.Code)
		}
	})
}
