package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// securityHeaders are set on every response
var securityHeaders = map[string]string{
	HeaderContentType:    HeaderValueNoSniff,
	HeaderFrameOptions:   HeaderValueSameOrigin,
	HeaderXSSProtection:  HeaderValueXSSBlock,
	HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
}

// Rate limiting and request limits
const (
	RateLimitWindow        = 5 * time.Minute
	RateLimitRequests      = 1000
	FailedAuthAlertCount   = 5
	HighRateLogEvery       = 100
	MaxRequestBodyBytes    = 1 << 20
	ReadHeaderTimeout      = 5 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// PublicPaths bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/version",
	"/metrics",
}

// QuietPaths are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
