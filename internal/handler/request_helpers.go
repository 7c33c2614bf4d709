package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleRates_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been written
// and the handler should return.
//
// Example usage:
//
//	var req calculator.Request
//	if err := DecodeAndValidateRequest(r, w, &req, "Calculate"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter.
// If ok is false, the HTTP response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetFloatQueryParam retrieves a required numeric query parameter
func GetFloatQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (float64, bool) {
	raw, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return value, true
}

// GetIntPathParam parses a chi URL parameter as an integer
func GetIntPathParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, paramName))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, paramName))
		return 0, false
	}
	return value, true
}
