package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgActivityNotFound = "activity not found"
	ErrMsgItemNotFound     = "item not found"
	ErrMsgTierNotFound     = "bonus tier not found"
	ErrMsgInvalidConfig    = "invalid configuration"

	// Selection errors
	ErrMsgInvalidSelection = "invalid boost selection"

	// Profile errors
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgClanNotFound      = "clan not found"
	ErrMsgMalformedProfile  = "malformed profile data"
	ErrMsgProfileSourceDown = "profile source unavailable"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrActivityNotFound = errors.New(ErrMsgActivityNotFound)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrTierNotFound     = errors.New(ErrMsgTierNotFound)
	ErrInvalidConfig    = errors.New(ErrMsgInvalidConfig)

	// ErrInvalidSelection is returned when a mutation would break a selection invariant.
	// The caller keeps the previous selection.
	ErrInvalidSelection = errors.New(ErrMsgInvalidSelection)

	ErrPlayerNotFound    = errors.New(ErrMsgPlayerNotFound)
	ErrClanNotFound      = errors.New(ErrMsgClanNotFound)
	ErrMalformedProfile  = errors.New(ErrMsgMalformedProfile)
	ErrProfileSourceDown = errors.New(ErrMsgProfileSourceDown)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// Log messages for lenient profile decoding
const (
	LogMsgMalformedUpgradeValue = "Ignoring malformed upgrade value"
)
