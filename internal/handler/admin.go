package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Scoreline_Go/internal/champion"
	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/leaderboard"
	"github.com/osse101/Scoreline_Go/internal/ledger"
	"github.com/osse101/Scoreline_Go/internal/scoring"
)

// AdminHandlers exposes operator actions: scoring runs, champion
// resolution, ledger repair and manual adjustments.
type AdminHandlers struct {
	scoring     scoring.Service
	champion    champion.Service
	ledger      ledger.Service
	leaderboard leaderboard.Service
}

// NewAdminHandlers creates a new admin handlers instance
func NewAdminHandlers(scoringService scoring.Service, championService champion.Service, ledgerService ledger.Service, leaderboardService leaderboard.Service) *AdminHandlers {
	return &AdminHandlers{
		scoring:     scoringService,
		champion:    championService,
		ledger:      ledgerService,
		leaderboard: leaderboardService,
	}
}

// HandleScoreMatch scores every pending prediction on a finished match
// @Summary Score match
// @Tags admin
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} domain.ScoringResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/matches/{id}/score [post]
func (h *AdminHandlers) HandleScoreMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, ok := getInt64PathParam(w, r, "id")
		if !ok {
			return
		}

		result, err := h.scoring.ScoreMatch(r.Context(), matchID)
		if err != nil {
			respondServiceError(w, r, "Score match", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleScorePending scores all finished matches not yet scored
// @Summary Score pending matches
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/matches/score-pending [post]
func (h *AdminHandlers) HandleScorePending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := h.scoring.ScorePendingMatches(r.Context())
		if err != nil {
			respondServiceError(w, r, "Score pending matches", err)
			return
		}
		if results == nil {
			results = []domain.ScoringResult{}
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgPendingMatchesScored, Data: results})
	}
}

// HandleResolveSeason confirms a season champion and settles its wagers
// @Summary Resolve season champion
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Season ID"
// @Param request body domain.ResolveSeasonRequest true "Champion team"
// @Success 200 {object} domain.ChampionResolution
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/seasons/{id}/champion [post]
func (h *AdminHandlers) HandleResolveSeason() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, ok := getInt64PathParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.ResolveSeasonRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve season"); err != nil {
			return
		}

		res, err := h.champion.ResolveSeason(r.Context(), seasonID, req.ChampionTeamID)
		if err != nil {
			respondServiceError(w, r, "Resolve season", err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleRebuildUser recomputes a user's cached balance and streak from the ledger
// @Summary Rebuild user from ledger
// @Tags admin
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/users/{userID}/rebuild [post]
func (h *AdminHandlers) HandleRebuildUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.ledger.RebuildFromLedger(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, "Rebuild user", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgUserRebuilt, Data: user})
	}
}

// HandleAdjustPoints appends a manual ledger entry. Type defaults to
// admin_adjustment; other types must accept an empty reference.
// @Summary Adjust points
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body domain.AdjustPointsRequest true "Adjustment"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/users/{userID}/adjust [post]
func (h *AdminHandlers) HandleAdjustPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AdjustPointsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust points"); err != nil {
			return
		}

		txType := domain.TxAdminAdjustment
		if req.Type != "" {
			txType = domain.TransactionType(req.Type)
		}

		tx, err := h.ledger.Append(r.Context(), domain.LedgerEntry{
			UserID:      chi.URLParam(r, "userID"),
			Type:        txType,
			Amount:      req.Amount,
			Description: req.Description,
			Reference:   domain.NoReference(),
		})
		if err != nil {
			respondServiceError(w, r, "Adjust points", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgPointsAdjusted, Data: tx})
	}
}

// HandleRecompute rebuilds one leaderboard, or every active one when no
// scope is given.
// @Summary Recompute leaderboards
// @Tags admin
// @Produce json
// @Param scope query string false "all_time, season, round or champion"
// @Param id query int false "Season or round ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/leaderboards/recompute [post]
func (h *AdminHandlers) HandleRecompute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("scope")
		if kind == "" {
			scopes, err := h.leaderboard.RecomputeActive(r.Context())
			if err != nil {
				respondServiceError(w, r, "Recompute leaderboards", err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: MsgLeaderboardsRecomputed, Data: scopes})
			return
		}

		id, ok := getScopeID(w, r)
		if !ok {
			return
		}
		scope, err := domain.ParseScope(kind, id)
		if err != nil {
			respondServiceError(w, r, "Recompute leaderboards", err)
			return
		}

		if _, err := h.leaderboard.Recompute(r.Context(), scope); err != nil {
			respondServiceError(w, r, "Recompute leaderboards", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgLeaderboardsRecomputed, Data: []domain.Scope{scope}})
	}
}
