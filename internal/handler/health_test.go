package handler

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

type stubCatalog []*domain.Activity

func (s stubCatalog) Activities() []*domain.Activity { return s }

func TestHandleHealthz(t *testing.T) {
	t.Run("catalog loaded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		HandleHealthz(stubCatalog{{Key: domain.ActivityMining}}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","activities":1}`, w.Body.String())
	})

	t.Run("empty catalog", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		HandleHealthz(stubCatalog{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
	})
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()

	HandleVersion("1.2.3").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
	assert.Contains(t, w.Body.String(), runtime.Version())

	w = httptest.NewRecorder()
	HandleVersion("").ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"version":"dev"`)
}
