package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
)

// ActivitySummary is one entry of the activity listing
type ActivitySummary struct {
	Key             domain.ActivityKey `json:"key"`
	Name            string             `json:"name"`
	MaxOutfitPieces int                `json:"max_outfit_pieces"`
	Gathering       bool               `json:"gathering"`
	ItemCount       int                `json:"item_count"`
}

// HandleListActivities lists every activity in display order
func HandleListActivities(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities := svc.Activities()
		out := make([]ActivitySummary, 0, len(activities))
		for _, a := range activities {
			out = append(out, ActivitySummary{
				Key:             a.Key,
				Name:            a.Name,
				MaxOutfitPieces: a.MaxOutfitPieces,
				Gathering:       a.Key.IsGathering(),
				ItemCount:       len(a.Items),
			})
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleListItems lists the items of one activity
func HandleListItems(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.ActivityKey(chi.URLParam(r, "activity"))

		activity, err := svc.Activity(key)
		if err != nil {
			logger.FromContext(r.Context()).Debug("Activity lookup failed", "activity", key, "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, activity.Items)
	}
}

// HandleGetLevel returns the cumulative experience required for a level
func HandleGetLevel(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level, ok := GetIntPathParam(r, w, "level")
		if !ok {
			return
		}

		info, err := svc.Level(level)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, info)
	}
}

// HandleGetProgress locates the xp query parameter within the level table
func HandleGetProgress(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		xp, ok := GetFloatQueryParam(r, w, "xp")
		if !ok {
			return
		}

		progress, err := svc.Progress(xp)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, progress)
	}
}
