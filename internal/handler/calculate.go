package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
)

// HandleCalculate runs one stateless rate calculation
func HandleCalculate(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req calculator.Request
		if err := DecodeAndValidateRequest(r, w, &req, "Calculate"); err != nil {
			return
		}

		result, err := svc.Calculate(r.Context(), req)
		if err != nil {
			log.Info("Calculation rejected", "activity", req.Activity, "item", req.Item, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleInferProfile infers boosts from a player record supplied in the body
func HandleInferProfile(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p domain.PlayerProfile
		if err := DecodeAndValidateRequest(r, w, &p, "Infer profile"); err != nil {
			return
		}

		state, err := svc.InferProfile(r.Context(), &p)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandlePlayerBoosts fetches a player record by name and infers its boosts
func HandlePlayerBoosts(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := url.PathUnescape(chi.URLParam(r, "name"))
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, "name"))
			return
		}

		state, err := svc.PlayerBoosts(r.Context(), name)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Player boosts failed", "username", name, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}
