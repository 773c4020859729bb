package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/eventlog"
)

// EventLogHandlers serves the domain event audit trail
type EventLogHandlers struct {
	service eventlog.Service
}

// NewEventLogHandlers creates a new event log handlers instance
func NewEventLogHandlers(service eventlog.Service) *EventLogHandlers {
	return &EventLogHandlers{service: service}
}

// HandleListEvents returns logged events, newest first
// @Summary List audit events
// @Tags admin
// @Produce json
// @Param user_id query string false "Filter by user"
// @Param type query string false "Filter by event type, e.g. match.scored"
// @Param since query string false "RFC 3339 lower bound on created_at"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} PagedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/events [get]
func (h *EventLogHandlers) HandleListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := getPage(w, r)
		if !ok {
			return
		}
		filter := domain.EventLogFilter{Page: page}

		q := r.URL.Query()
		if raw := q.Get("user_id"); raw != "" {
			if _, err := uuid.Parse(raw); err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidUserFilter)
				return
			}
			filter.UserID = &raw
		}
		if raw := q.Get("type"); raw != "" {
			filter.EventType = &raw
		}
		if raw := q.Get("since"); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		events, total, err := h.service.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, "List events", err)
			return
		}
		if events == nil {
			events = []domain.EventLogEntry{}
		}

		respondJSON(w, http.StatusOK, PagedResponse{Items: events, Total: total, Limit: page.Limit, Offset: page.Offset})
	}
}
