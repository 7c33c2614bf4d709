package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"item with suggestions", fmt.Errorf("%w: \"Iron Or\" (did you mean: Iron Ore?)", domain.ErrItemNotFound), http.StatusNotFound, "item not found: \"Iron Or\" (did you mean: Iron Ore?)"},
		{"activity", domain.ErrActivityNotFound, http.StatusNotFound, ErrMsgActivityNotFoundError},
		{"player", fmt.Errorf("%w: /Player/profile/x", domain.ErrPlayerNotFound), http.StatusNotFound, ErrMsgPlayerNotFoundError},
		{"session", domain.ErrSessionNotFound, http.StatusNotFound, ErrMsgSessionNotFoundError},
		{"selection", fmt.Errorf("%w: 5 scrolls", domain.ErrInvalidSelection), http.StatusUnprocessableEntity, "invalid boost selection: 5 scrolls"},
		{"input", domain.ErrInvalidInput, http.StatusBadRequest, domain.ErrMsgInvalidInput},
		{"malformed", domain.ErrMalformedProfile, http.StatusBadGateway, ErrMsgMalformedProfileError},
		{"source down", fmt.Errorf("%w: dial tcp", domain.ErrProfileSourceDown), http.StatusBadGateway, ErrMsgProfileSourceDownError},
		{"config", domain.ErrInvalidConfig, http.StatusInternalServerError, ErrMsgInvalidConfigError},
		{"unknown", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"long detail falls back", fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Repeat("x", 400)), http.StatusBadRequest, ErrMsgInvalidInputError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: "done"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"done"}`, w.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
