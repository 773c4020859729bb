package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Scoreline_Go/internal/champion"
	"github.com/osse101/Scoreline_Go/internal/domain"
)

// ChampionHandlers handles season champion predictions
type ChampionHandlers struct {
	service champion.Service
}

// NewChampionHandlers creates a new champion handlers instance
func NewChampionHandlers(service champion.Service) *ChampionHandlers {
	return &ChampionHandlers{service: service}
}

// HandlePredict places the caller's champion wager
// @Summary Predict season champion
// @Description Wager points on a team winning the season. The wager is debited immediately.
// @Tags champion
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param request body domain.ChampionPredictionRequest true "Pick, confidence and wager"
// @Success 201 {object} domain.ChampionPrediction
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/champion-predictions [post]
func (h *ChampionHandlers) HandlePredict() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireCaller(w, r)
		if !ok {
			return
		}

		var req domain.ChampionPredictionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Champion prediction"); err != nil {
			return
		}

		cp, err := h.service.Predict(r.Context(), userID, req)
		if err != nil {
			respondServiceError(w, r, "Champion prediction", err)
			return
		}

		respondJSON(w, http.StatusCreated, cp)
	}
}

// HandleListByUser returns a user's champion predictions
// @Summary List user champion predictions
// @Tags champion
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} domain.ChampionPrediction
// @Router /api/v1/users/{userID}/champion-predictions [get]
func (h *ChampionHandlers) HandleListByUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preds, err := h.service.ListByUser(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, "List champion predictions", err)
			return
		}
		if preds == nil {
			preds = []domain.ChampionPrediction{}
		}

		respondJSON(w, http.StatusOK, preds)
	}
}

// HandleGetSeasonChampion returns the confirmed champion of a season
// @Summary Get season champion
// @Tags champion
// @Produce json
// @Param id path int true "Season ID"
// @Success 200 {object} domain.SeasonChampion
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/seasons/{id}/champion [get]
func (h *ChampionHandlers) HandleGetSeasonChampion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, ok := getInt64PathParam(w, r, "id")
		if !ok {
			return
		}

		sc, err := h.service.GetSeasonChampion(r.Context(), seasonID)
		if err != nil {
			respondServiceError(w, r, "Get season champion", err)
			return
		}
		if sc == nil {
			respondError(w, http.StatusNotFound, ErrMsgChampionNotResolved)
			return
		}

		respondJSON(w, http.StatusOK, sc)
	}
}
