package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Scoreline_Go/internal/ledger"
)

// PointsHandlers serves balance and ledger history reads
type PointsHandlers struct {
	ledger ledger.Service
}

// NewPointsHandlers creates a new points handlers instance
func NewPointsHandlers(ledgerService ledger.Service) *PointsHandlers {
	return &PointsHandlers{ledger: ledgerService}
}

// HandleGetPoints returns the ledger balance with one page of history
// @Summary Get points
// @Description Balance is the sum of the user's ledger; transactions are newest first.
// @Tags points
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} domain.PointHistory
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/points [get]
func (h *PointsHandlers) HandleGetPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := getPage(w, r)
		if !ok {
			return
		}

		history, err := h.ledger.History(r.Context(), chi.URLParam(r, "userID"), page)
		if err != nil {
			respondServiceError(w, r, "Get points", err)
			return
		}

		respondJSON(w, http.StatusOK, history)
	}
}
