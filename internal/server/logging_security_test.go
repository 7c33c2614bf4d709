package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRates_Go/internal/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	loggingMiddleware(okHandler()).ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "TestAgent")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	captureLogs(t)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.GetRequestID(r.Context())
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/levels", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		rec := httptest.NewRecorder()

		loggingMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
	})

	t.Run("generates id when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()

		loggingMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/levels", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	buf := captureLogs(t)

	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, buf.String(), LogMsgRequestStarted)
}
