package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

func TestHandleSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)
		svc.On("Submit", mock.Anything, testUserID, int64(9), 2, 1).
			Return(&domain.Prediction{ID: 1, UserID: testUserID, MatchID: 9, PredictedHomeScore: 2, PredictedAwayScore: 1, StreakMultiplier: 1}, nil)

		req := asCaller(newRequest(http.MethodPost, "/predictions", `{"match_id":9,"home_score":2,"away_score":1}`), testUserID)
		w := httptest.NewRecorder()
		h.HandleSubmit().ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got domain.Prediction
		decodeBody(t, w, &got)
		assert.Equal(t, int64(1), got.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Missing caller", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)

		w := httptest.NewRecorder()
		h.HandleSubmit().ServeHTTP(w, newRequest(http.MethodPost, "/predictions", `{"match_id":9,"home_score":2,"away_score":1}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMissingUserHeader)
		svc.AssertNumberOfCalls(t, "Submit", 0)
	})

	t.Run("Unknown field rejected", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)

		req := asCaller(newRequest(http.MethodPost, "/predictions", `{"match_id":9,"home_score":2,"away_score":1,"points":50}`), testUserID)
		w := httptest.NewRecorder()
		h.HandleSubmit().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("Validation error lists fields", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)

		req := asCaller(newRequest(http.MethodPost, "/predictions", `{"match_id":9,"home_score":-1}`), testUserID)
		w := httptest.NewRecorder()
		h.HandleSubmit().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		decodeBody(t, w, &resp)
		assert.Contains(t, resp.Fields, "homescore")
		assert.Contains(t, resp.Fields, "awayscore")
	})

	t.Run("Locked match", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)
		svc.On("Submit", mock.Anything, testUserID, int64(9), 0, 0).Return(nil, domain.ErrMatchLocked)

		req := asCaller(newRequest(http.MethodPost, "/predictions", `{"match_id":9,"home_score":0,"away_score":0}`), testUserID)
		w := httptest.NewRecorder()
		h.HandleSubmit().ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMatchLockedError)
	})
}

func TestHandleUpdate(t *testing.T) {
	t.Run("Not owner", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)
		svc.On("Update", mock.Anything, testUserID, int64(4), 1, 1).
			Return(nil, fmt.Errorf("update prediction: %w", domain.ErrUnauthorized))

		req := asCaller(newRequest(http.MethodPut, "/predictions/4", `{"home_score":1,"away_score":1}`, "id", "4"), testUserID)
		w := httptest.NewRecorder()
		h.HandleUpdate().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Bad id", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)

		req := asCaller(newRequest(http.MethodPut, "/predictions/abc", `{"home_score":1,"away_score":1}`, "id", "abc"), testUserID)
		w := httptest.NewRecorder()
		h.HandleUpdate().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(ErrMsgInvalidPathParam, "id"))
	})
}

func TestHandleGetPrediction_NotFound(t *testing.T) {
	svc := new(MockPredictionService)
	h := NewPredictionHandlers(svc)
	svc.On("Get", mock.Anything, int64(77)).Return(nil, domain.ErrPredictionNotFound)

	w := httptest.NewRecorder()
	h.HandleGet().ServeHTTP(w, newRequest(http.MethodGet, "/predictions/77", "", "id", "77"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgPredictionNotFoundError)
}

func TestHandleListPredictions(t *testing.T) {
	t.Run("Paging is normalized", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)
		svc.On("ListByUser", mock.Anything, testUserID, domain.Page{Limit: domain.MaxPageLimit, Offset: 40}).
			Return(nil, 0, nil)

		req := newRequest(http.MethodGet, "/users/x/predictions?limit=500&offset=40", "", "userID", testUserID)
		w := httptest.NewRecorder()
		h.HandleListByUser().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid offset", func(t *testing.T) {
		svc := new(MockPredictionService)
		h := NewPredictionHandlers(svc)

		req := newRequest(http.MethodGet, "/users/x/predictions?offset=-3", "", "userID", testUserID)
		w := httptest.NewRecorder()
		h.HandleListByUser().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidOffset)
	})
}
