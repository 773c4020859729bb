package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

type adminMocks struct {
	scoring     *MockScoringService
	champion    *MockChampionService
	ledger      *MockLedgerService
	leaderboard *MockLeaderboardService
}

func newAdminHandlers() (*AdminHandlers, adminMocks) {
	m := adminMocks{
		scoring:     new(MockScoringService),
		champion:    new(MockChampionService),
		ledger:      new(MockLedgerService),
		leaderboard: new(MockLeaderboardService),
	}
	return NewAdminHandlers(m.scoring, m.champion, m.ledger, m.leaderboard), m
}

func TestHandleScoreMatch(t *testing.T) {
	t.Run("Scored", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.scoring.On("ScoreMatch", mock.Anything, int64(10)).Return(&domain.ScoringResult{
			MatchID:       10,
			Scored:        3,
			PointsAwarded: 180,
			TierCounts:    map[string]int{"exact_score": 1, "winner": 1, "miss": 1},
		}, nil)

		w := httptest.NewRecorder()
		h.HandleScoreMatch().ServeHTTP(w, newRequest(http.MethodPost, "/admin/matches/10/score", "", "id", "10"))

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.ScoringResult
		decodeBody(t, w, &got)
		assert.Equal(t, 3, got.Scored)
		assert.Equal(t, int64(180), got.PointsAwarded)
	})

	t.Run("Match not finished", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.scoring.On("ScoreMatch", mock.Anything, int64(10)).Return(nil, domain.ErrMatchNotFinished)

		w := httptest.NewRecorder()
		h.HandleScoreMatch().ServeHTTP(w, newRequest(http.MethodPost, "/admin/matches/10/score", "", "id", "10"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMatchNotFinishedError)
	})
}

func TestHandleResolveSeason(t *testing.T) {
	t.Run("Settled", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.champion.On("ResolveSeason", mock.Anything, int64(2), int64(8)).
			Return(&domain.ChampionResolution{SeasonID: 2, ChampionTeamID: 8, Won: 1, Lost: 2, PointsPaid: 160}, nil)

		w := httptest.NewRecorder()
		h.HandleResolveSeason().ServeHTTP(w, newRequest(http.MethodPost, "/admin/seasons/2/champion", `{"champion_team_id":8}`, "id", "2"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"points_paid":160`)
	})

	t.Run("Different champion already confirmed", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.champion.On("ResolveSeason", mock.Anything, int64(2), int64(9)).Return(nil, domain.ErrAlreadyResolved)

		w := httptest.NewRecorder()
		h.HandleResolveSeason().ServeHTTP(w, newRequest(http.MethodPost, "/admin/seasons/2/champion", `{"champion_team_id":9}`, "id", "2"))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleAdjustPoints(t *testing.T) {
	t.Run("Defaults to admin adjustment", func(t *testing.T) {
		h, m := newAdminHandlers()
		want := domain.LedgerEntry{
			UserID:      testUserID,
			Type:        domain.TxAdminAdjustment,
			Amount:      -25,
			Description: "refund reversal",
			Reference:   domain.NoReference(),
		}
		m.ledger.On("Append", mock.Anything, want).
			Return(&domain.PointTransaction{ID: 1, UserID: testUserID, Type: domain.TxAdminAdjustment, Amount: -25}, nil)

		req := newRequest(http.MethodPost, "/admin/users/x/adjust", `{"amount":-25,"description":"refund reversal"}`, "userID", testUserID)
		w := httptest.NewRecorder()
		h.HandleAdjustPoints().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgPointsAdjusted)
		m.ledger.AssertExpectations(t)
	})

	t.Run("Explicit type", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.ledger.On("Append", mock.Anything, mock.MatchedBy(func(e domain.LedgerEntry) bool {
			return e.Type == domain.TxSponsorBonus && e.Amount == 50
		})).Return(&domain.PointTransaction{ID: 2, Type: domain.TxSponsorBonus, Amount: 50}, nil)

		req := newRequest(http.MethodPost, "/admin/users/x/adjust", `{"amount":50,"type":"sponsor_bonus"}`, "userID", testUserID)
		w := httptest.NewRecorder()
		h.HandleAdjustPoints().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Zero amount", func(t *testing.T) {
		h, m := newAdminHandlers()

		req := newRequest(http.MethodPost, "/admin/users/x/adjust", `{"amount":0}`, "userID", testUserID)
		w := httptest.NewRecorder()
		h.HandleAdjustPoints().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.ledger.AssertNumberOfCalls(t, "Append", 0)
	})

	t.Run("Over the cap", func(t *testing.T) {
		h, _ := newAdminHandlers()

		req := newRequest(http.MethodPost, "/admin/users/x/adjust", `{"amount":1000001}`, "userID", testUserID)
		w := httptest.NewRecorder()
		h.HandleAdjustPoints().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Reference required by type", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.ledger.On("Append", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidReference)

		req := newRequest(http.MethodPost, "/admin/users/x/adjust", `{"amount":10,"type":"mission"}`, "userID", testUserID)
		w := httptest.NewRecorder()
		h.HandleAdjustPoints().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidTransactionError)
	})
}

func TestHandleRecompute(t *testing.T) {
	t.Run("Active scopes", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.leaderboard.On("RecomputeActive", mock.Anything).
			Return([]domain.Scope{domain.AllTimeScope(), domain.SeasonScope(1)}, nil)

		w := httptest.NewRecorder()
		h.HandleRecompute().ServeHTTP(w, newRequest(http.MethodPost, "/admin/leaderboards/recompute", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		m.leaderboard.AssertNumberOfCalls(t, "Recompute", 0)
	})

	t.Run("Single scope", func(t *testing.T) {
		h, m := newAdminHandlers()
		m.leaderboard.On("Recompute", mock.Anything, domain.RoundScope(4)).Return([]domain.LeaderboardEntry{}, nil)

		w := httptest.NewRecorder()
		h.HandleRecompute().ServeHTTP(w, newRequest(http.MethodPost, "/admin/leaderboards/recompute?scope=round&id=4", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		m.leaderboard.AssertExpectations(t)
	})

	t.Run("Invalid scope", func(t *testing.T) {
		h, _ := newAdminHandlers()

		w := httptest.NewRecorder()
		h.HandleRecompute().ServeHTTP(w, newRequest(http.MethodPost, "/admin/leaderboards/recompute?scope=round", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidScopeError)
	})
}

func TestHandleRebuildUser(t *testing.T) {
	h, m := newAdminHandlers()
	m.ledger.On("RebuildFromLedger", mock.Anything, testUserID).
		Return(&domain.User{ID: testUserID, PointsBalance: 240, CurrentStreak: 2, MaxStreak: 5}, nil)

	w := httptest.NewRecorder()
	h.HandleRebuildUser().ServeHTTP(w, newRequest(http.MethodPost, "/admin/users/x/rebuild", "", "userID", testUserID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"points_balance":240`)
}
