package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/IdleRates_Go/internal/logger"
)

// ipCounter counts events per client IP inside a fixed window that restarts
// once it has elapsed
type ipCounter struct {
	mu     sync.Mutex
	counts map[string]int
	start  time.Time
	window time.Duration
	now    func() time.Time
}

func newIPCounter(window time.Duration) *ipCounter {
	return &ipCounter{
		counts: make(map[string]int),
		start:  time.Now(),
		window: window,
		now:    time.Now,
	}
}

// add records one event for ip and returns the count in the current window
func (c *ipCounter) add(ip string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if now := c.now(); now.Sub(c.start) > c.window {
		clear(c.counts)
		c.start = now
	}
	c.counts[ip]++
	return c.counts[ip]
}

// RateLimiter caps requests per client IP and tracks failed API-key attempts
type RateLimiter struct {
	limit    int
	requests *ipCounter
	failures *ipCounter
}

// NewRateLimiter allows limit requests per IP per window; non-positive values use the defaults
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = RateLimitRequests
	}
	if window <= 0 {
		window = RateLimitWindow
	}
	return &RateLimiter{
		limit:    limit,
		requests: newIPCounter(window),
		failures: newIPCounter(window),
	}
}

// Allow counts a request from ip and reports whether it is within the limit
func (l *RateLimiter) Allow(ip string) bool {
	n := l.requests.add(ip)
	if n <= l.limit {
		return true
	}
	if n%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// RecordFailedAuth counts a rejected API key from ip and returns the count in the window
func (l *RateLimiter) RecordFailedAuth(ip string) int {
	n := l.failures.add(ip)
	if n >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
	return n
}

// AuthMiddleware requires X-API-Key on every non-public path. An empty key disables it.
func AuthMiddleware(apiKey string, trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				limiter.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware answers 429 once a client exceeds the limiter's budget
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets the static hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	return slices.ContainsFunc(PublicPaths, func(p string) bool {
		return strings.HasPrefix(path, p)
	})
}

// clientIP returns the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy
func clientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}
