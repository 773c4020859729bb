package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/leaderboard"
)

// LeaderboardHandlers serves stored leaderboard standings
type LeaderboardHandlers struct {
	service leaderboard.Service
}

// NewLeaderboardHandlers creates a new leaderboard handlers instance
func NewLeaderboardHandlers(service leaderboard.Service) *LeaderboardHandlers {
	return &LeaderboardHandlers{service: service}
}

// getScopeID reads the optional id query parameter; 0 when absent
func getScopeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidScopeID)
		return 0, false
	}
	return id, true
}

// getScope reads the {scope} path segment and the id query parameter
func getScope(w http.ResponseWriter, r *http.Request) (domain.Scope, bool) {
	id, ok := getScopeID(w, r)
	if !ok {
		return domain.Scope{}, false
	}

	scope, err := domain.ParseScope(chi.URLParam(r, "scope"), id)
	if err != nil {
		respondServiceError(w, r, "Parse scope", err)
		return domain.Scope{}, false
	}
	return scope, true
}

// HandleGetLeaderboard returns one page of a scope's standings
// @Summary Get leaderboard
// @Description Standings as of the last recompute, ranked 1..n with no gaps.
// @Tags leaderboard
// @Produce json
// @Param scope path string true "all_time, season, round or champion"
// @Param id query int false "Season or round ID (omit for all_time)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} domain.LeaderboardPage
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboards/{scope} [get]
func (h *LeaderboardHandlers) HandleGetLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, ok := getScope(w, r)
		if !ok {
			return
		}
		page, ok := getPage(w, r)
		if !ok {
			return
		}

		board, err := h.service.GetLeaderboard(r.Context(), scope, page)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, board)
	}
}

// HandleGetUserStanding returns a single user's row in a scope
// @Summary Get user standing
// @Tags leaderboard
// @Produce json
// @Param scope path string true "all_time, season, round or champion"
// @Param userID path string true "User ID"
// @Param id query int false "Season or round ID (omit for all_time)"
// @Success 200 {object} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leaderboards/{scope}/users/{userID} [get]
func (h *LeaderboardHandlers) HandleGetUserStanding() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, ok := getScope(w, r)
		if !ok {
			return
		}

		entry, err := h.service.GetUserStanding(r.Context(), scope, chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, "Get user standing", err)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}
