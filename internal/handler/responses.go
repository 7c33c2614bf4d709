package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reuses encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error onto a status and user message
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Item and selection errors carry their own details (suggestions, limits), which
// are built from catalog data and safe to return.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, detailOr(err, ErrMsgItemNotFoundPrefixError)
	case errors.Is(err, domain.ErrActivityNotFound):
		return http.StatusNotFound, ErrMsgActivityNotFoundError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusUnprocessableEntity, detailOr(err, ErrMsgInvalidSelectionError)
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, detailOr(err, ErrMsgInvalidInputError)
	case errors.Is(err, domain.ErrMalformedProfile):
		return http.StatusBadGateway, ErrMsgMalformedProfileError
	case errors.Is(err, domain.ErrProfileSourceDown):
		return http.StatusBadGateway, ErrMsgProfileSourceDownError
	case errors.Is(err, domain.ErrInvalidConfig):
		return http.StatusInternalServerError, ErrMsgInvalidConfigError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// detailOr returns the error text when it is short enough to show, else fallback
func detailOr(err error, fallback string) string {
	msg := err.Error()
	if msg == "" || len(msg) > 300 || strings.ContainsAny(msg, "\n\r") {
		return fallback
	}
	return msg
}
