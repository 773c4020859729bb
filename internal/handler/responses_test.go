package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, ErrMsgUserNotFoundError},
		{"wrapped match not found", fmt.Errorf("get match: %w", domain.ErrMatchNotFound), http.StatusNotFound, ErrMsgMatchNotFoundError},
		{"not ranked", domain.ErrNotRanked, http.StatusNotFound, ErrMsgNotRankedError},
		{"generic not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgResourceNotFoundErr},
		{"already predicted", domain.ErrAlreadyPredicted, http.StatusConflict, ErrMsgAlreadyPredictedError},
		{"match locked", domain.ErrMatchLocked, http.StatusConflict, ErrMsgMatchLockedError},
		{"already calculated", domain.ErrAlreadyCalculated, http.StatusConflict, ErrMsgAlreadyCalculatedError},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden, ErrMsgNotYourPredictionError},
		{"insufficient points", domain.ErrInsufficientPoints, http.StatusUnprocessableEntity, ErrMsgInsufficientPointsError},
		{"bad sign", domain.ErrInvalidTransactionSign, http.StatusBadRequest, ErrMsgInvalidTransactionError},
		{"season closed", domain.ErrSeasonClosed, http.StatusConflict, ErrMsgSeasonClosedError},
		{"team not in season", domain.ErrTeamNotInSeason, http.StatusBadRequest, ErrMsgTeamNotInSeasonError},
		{"already resolved", domain.ErrAlreadyResolved, http.StatusConflict, ErrMsgAlreadyResolvedError},
		{"invalid scope", domain.ErrInvalidScope, http.StatusBadRequest, ErrMsgInvalidScopeError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestRespondServiceError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	respondServiceError(w, newRequest(http.MethodGet, "/", ""), "Test", errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}
