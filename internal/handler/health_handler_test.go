package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeHealth struct {
	now     time.Time
	dbErr   error
	pingErr error
}

func (f *fakeHealth) ServerTime(context.Context) (time.Time, error) { return f.now, f.dbErr }

func (f *fakeHealth) PingCache(context.Context) error { return f.pingErr }

func TestHealthHandler(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c, rec := newContext(http.MethodGet, "/health", "")
	NewHealthHandler(&fakeHealth{now: now}).Health(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "2026-03-01T09:00:00Z", body["serverTime"])
}

func TestHealthHandlerDatabaseDown(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "")
	NewHealthHandler(&fakeHealth{dbErr: errors.New("password authentication failed for user app")}).Health(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","database":"disconnected"}`, rec.Body.String())
}

func TestReadyHandler(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/ready", "")
	NewHealthHandler(&fakeHealth{}).Ready(c)
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/ready", "")
	NewHealthHandler(&fakeHealth{pingErr: errors.New("redis down")}).Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "cache", decodeBody(t, rec)["component"])
}

func TestMetricsHandler(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/metrics", "")
	NewMetricsHandler(nil).Prometheus(c)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	c, rec = newContext(http.MethodGet, "/metrics", "")
	NewMetricsHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("up 1\n"))
	})).Prometheus(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up 1\n", rec.Body.String())
}
