package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

func TestHandleGetPoints(t *testing.T) {
	t.Run("History page", func(t *testing.T) {
		svc := new(MockLedgerService)
		h := NewPointsHandlers(svc)
		svc.On("History", mock.Anything, testUserID, domain.Page{Limit: 5, Offset: 0}).Return(&domain.PointHistory{
			UserID:  testUserID,
			Balance: 130,
			Transactions: []domain.PointTransaction{
				{ID: 2, Type: domain.TxPredictionWin, Amount: 100},
				{ID: 1, Type: domain.TxDailyBonus, Amount: 30},
			},
			Total: 2,
			Limit: 5,
		}, nil)

		w := httptest.NewRecorder()
		h.HandleGetPoints().ServeHTTP(w, newRequest(http.MethodGet, "/users/x/points?limit=5", "", "userID", testUserID))

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.PointHistory
		decodeBody(t, w, &got)
		assert.Equal(t, int64(130), got.Balance)
		assert.Len(t, got.Transactions, 2)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc := new(MockLedgerService)
		h := NewPointsHandlers(svc)
		svc.On("History", mock.Anything, "ghost", mock.Anything).Return(nil, domain.ErrUserNotFound)

		w := httptest.NewRecorder()
		h.HandleGetPoints().ServeHTTP(w, newRequest(http.MethodGet, "/users/ghost/points", "", "userID", "ghost"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUserNotFoundError)
	})
}
