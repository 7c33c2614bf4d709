package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
	"github.com/osse101/IdleRates_Go/internal/selection"
	"github.com/osse101/IdleRates_Go/internal/session"
)

// LoadPlayerRequest loads a player into a session, either by name through the
// player record source or from a record supplied inline
type LoadPlayerRequest struct {
	Name    string                `json:"name,omitempty" validate:"max=100"`
	Profile *domain.PlayerProfile `json:"profile,omitempty"`
}

// SessionHandler handles calculator session HTTP requests
type SessionHandler struct {
	store *session.Store
	svc   calculator.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store, svc calculator.Service) *SessionHandler {
	return &SessionHandler{
		store: store,
		svc:   svc,
	}
}

// Create starts a session with default selections
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	state := h.store.Create(r.Context())
	respondJSON(w, http.StatusCreated, state)
}

// Get returns the full session state
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.Get(chi.URLParam(r, "id"))
	h.respond(w, r, state, err)
}

// PatchBoosts edits the selection of one activity; a rejected edit leaves the session unchanged
func (h *SessionHandler) PatchBoosts(w http.ResponseWriter, r *http.Request) {
	var patch selection.Patch
	if err := DecodeAndValidateRequest(r, w, &patch, "Patch boosts"); err != nil {
		return
	}

	activity := domain.ActivityKey(chi.URLParam(r, "activity"))
	if _, err := h.svc.Activity(activity); err != nil {
		respondServiceError(w, err)
		return
	}

	state, err := h.store.PatchBoosts(r.Context(), chi.URLParam(r, "id"), activity, patch)
	h.respond(w, r, state, err)
}

// SetGeneral replaces the shared housing and gold buffs
func (h *SessionHandler) SetGeneral(w http.ResponseWriter, r *http.Request) {
	var general domain.GeneralBuffs
	if err := DecodeAndValidateRequest(r, w, &general, "Set general buffs"); err != nil {
		return
	}

	state, err := h.store.SetGeneral(chi.URLParam(r, "id"), general)
	h.respond(w, r, state, err)
}

// SetGathering replaces the tiered gathering buffs
func (h *SessionHandler) SetGathering(w http.ResponseWriter, r *http.Request) {
	var gathering domain.GatheringBuffs
	if err := DecodeAndValidateRequest(r, w, &gathering, "Set gathering buffs"); err != nil {
		return
	}

	state, err := h.store.SetGathering(chi.URLParam(r, "id"), gathering)
	h.respond(w, r, state, err)
}

// SetUpgrades replaces the boolean upgrades
func (h *SessionHandler) SetUpgrades(w http.ResponseWriter, r *http.Request) {
	var upgrades domain.UpgradeBuffs
	if err := DecodeAndValidateRequest(r, w, &upgrades, "Set upgrades"); err != nil {
		return
	}

	state, err := h.store.SetUpgrades(chi.URLParam(r, "id"), upgrades)
	h.respond(w, r, state, err)
}

// SetTarget changes the activity, item, current experience or target level
func (h *SessionHandler) SetTarget(w http.ResponseWriter, r *http.Request) {
	var target session.Target
	if err := DecodeAndValidateRequest(r, w, &target, "Set target"); err != nil {
		return
	}

	state, err := h.store.SetTarget(r.Context(), chi.URLParam(r, "id"), target)
	h.respond(w, r, state, err)
}

// LoadPlayer replaces the session's selections and buffs with those inferred from a player
func (h *SessionHandler) LoadPlayer(w http.ResponseWriter, r *http.Request) {
	var req LoadPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Load player"); err != nil {
		return
	}
	id := chi.URLParam(r, "id")

	if req.Profile != nil {
		inferred, err := h.svc.InferProfile(r.Context(), req.Profile)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		state, err := h.store.ApplyInferred(r.Context(), id, inferred)
		h.respond(w, r, state, err)
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, ErrMsgPlayerSourceRequired)
		return
	}
	state, err := h.store.LoadPlayer(r.Context(), id, req.Name)
	h.respond(w, r, state, err)
}

// Reset returns the session to its defaults
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgSessionReset, Data: state})
}

// Result calculates the rates for the session's current activity and item
func (h *SessionHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.FromContext(r.Context()).Debug("Session result failed", "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request, state *session.State, err error) {
	if err != nil {
		logger.FromContext(r.Context()).Debug("Session request failed", "path", r.URL.Path, "error", err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}
