package handler

import (
	"net/http"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status     string `json:"status"`
	Activities int    `json:"activities,omitempty"`
}

// ActivityCounter reports how many activities the loaded catalog holds
type ActivityCounter interface {
	Activities() []*domain.Activity
}

// HandleHealthz provides a liveness check that also confirms the catalog is loaded
func HandleHealthz(catalog ActivityCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := len(catalog.Activities())
		if n == 0 {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Activities: n})
	}
}
