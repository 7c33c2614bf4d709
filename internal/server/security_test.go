package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	limiter := NewRateLimiter(0, 0)
	handler := AuthMiddleware(apiKey, nil, limiter)(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"valid key", apiKey, "/api/v1/calculate", http.StatusOK},
		{"invalid key", "wrong-key", "/api/v1/calculate", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/sessions", http.StatusUnauthorized},
		{"public healthz", "", "/healthz", http.StatusOK},
		{"public metrics", "", "/metrics", http.StatusOK},
		{"public version", "", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	// two rejected keys so far, this call makes the third
	assert.Equal(t, 3, limiter.RecordFailedAuth("192.0.2.1"))
}

func TestAuthMiddleware_DisabledWithoutKey(t *testing.T) {
	handler := AuthMiddleware("", nil, NewRateLimiter(0, 0))(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/calculate", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	handler := RateLimitMiddleware(nil, limiter)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other clients are unaffected
	other := httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil)
	other.RemoteAddr = "10.0.0.1:999"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_WindowReset(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	now := time.Now()
	limiter.requests.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("2.2.2.2"))

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.Allow("1.1.1.1"))
}

func TestRateLimiter_FailedAuthCountsSeparately(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	assert.Equal(t, 1, limiter.RecordFailedAuth("1.1.1.1"))
	assert.Equal(t, 2, limiter.RecordFailedAuth("1.1.1.1"))
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.Equal(t, 1, limiter.RecordFailedAuth("3.3.3.3"))
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter(-1, 0)

	assert.Equal(t, RateLimitRequests, limiter.limit)
	assert.Equal(t, RateLimitWindow, limiter.requests.window)
	assert.Equal(t, RateLimitWindow, limiter.failures.window)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "203.0.113.5:4000", "", nil, "203.0.113.5"},
		{"untrusted forwarded ignored", "203.0.113.5:4000", "1.2.3.4", nil, "203.0.113.5"},
		{"trusted proxy uses rightmost", "10.0.0.2:80", "1.2.3.4, 5.6.7.8", []string{"10.0.0.2"}, "5.6.7.8"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, clientIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body is far too long"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
