package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"

	// Player loading error messages
	ErrMsgPlayerSourceRequired = "Either name or profile is required"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError      = "Something went wrong"
	ErrMsgUnknownError            = "Unknown error"
	ErrMsgActivityNotFoundError   = "Activity not found"
	ErrMsgPlayerNotFoundError     = "Player not found"
	ErrMsgSessionNotFoundError    = "Session not found or expired"
	ErrMsgProfileSourceDownError  = "Player records are unavailable. Please try again later."
	ErrMsgMalformedProfileError   = "Player record could not be read"
	ErrMsgInvalidConfigError      = "Server configuration error"
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
	ErrMsgInvalidSelectionError   = "That boost selection is not allowed"
	ErrMsgItemNotFoundPrefixError = "Item not found"
)

// Success messages for API responses
const (
	MsgSessionReset = "Session reset"
)
