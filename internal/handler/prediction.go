package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/prediction"
)

// PredictionHandlers handles match prediction HTTP requests
type PredictionHandlers struct {
	service prediction.Service
}

// NewPredictionHandlers creates a new prediction handlers instance
func NewPredictionHandlers(service prediction.Service) *PredictionHandlers {
	return &PredictionHandlers{service: service}
}

// HandleSubmit records the caller's prediction for a match
// @Summary Submit prediction
// @Description Predict the final scoreline of a match before it locks. The caller's current streak multiplier is snapshotted.
// @Tags prediction
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param request body domain.SubmitPredictionRequest true "Predicted scoreline"
// @Success 201 {object} domain.Prediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/predictions [post]
func (h *PredictionHandlers) HandleSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireCaller(w, r)
		if !ok {
			return
		}

		var req domain.SubmitPredictionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit prediction"); err != nil {
			return
		}

		p, err := h.service.Submit(r.Context(), userID, req.MatchID, *req.HomeScore, *req.AwayScore)
		if err != nil {
			respondServiceError(w, r, "Submit prediction", err)
			return
		}

		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleUpdate changes the scoreline of the caller's own prediction
// @Summary Update prediction
// @Description Change an unscored prediction while its match is still open. Only the owner may update.
// @Tags prediction
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param id path int true "Prediction ID"
// @Param request body domain.UpdatePredictionRequest true "New scoreline"
// @Success 200 {object} domain.Prediction
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/predictions/{id} [put]
func (h *PredictionHandlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireCaller(w, r)
		if !ok {
			return
		}
		id, ok := getInt64PathParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdatePredictionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update prediction"); err != nil {
			return
		}

		p, err := h.service.Update(r.Context(), userID, id, *req.HomeScore, *req.AwayScore)
		if err != nil {
			respondServiceError(w, r, "Update prediction", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGet returns a single prediction
// @Summary Get prediction
// @Tags prediction
// @Produce json
// @Param id path int true "Prediction ID"
// @Success 200 {object} domain.Prediction
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/predictions/{id} [get]
func (h *PredictionHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getInt64PathParam(w, r, "id")
		if !ok {
			return
		}

		p, err := h.service.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get prediction", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleListByUser pages through a user's predictions, newest first
// @Summary List user predictions
// @Tags prediction
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} PagedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/users/{userID}/predictions [get]
func (h *PredictionHandlers) HandleListByUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := getPage(w, r)
		if !ok {
			return
		}

		preds, total, err := h.service.ListByUser(r.Context(), chi.URLParam(r, "userID"), page)
		if err != nil {
			respondServiceError(w, r, "List predictions", err)
			return
		}
		if preds == nil {
			preds = []domain.Prediction{}
		}

		respondJSON(w, http.StatusOK, PagedResponse{Items: preds, Total: total, Limit: page.Limit, Offset: page.Offset})
	}
}
