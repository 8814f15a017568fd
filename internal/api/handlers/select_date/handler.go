package select_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers"
	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers/views"
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/internal/service/wizard"
)

const (
	msgInvalidSessionID   = "invalid session ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateFormat  = "date must be in YYYY-MM-DD format"
	msgSessionNotFound    = "session not found"
	msgDateInPast         = "date is in the past"
	msgDateTooFar         = "date is beyond the booking window"
	msgClosedWeekday      = "broker is closed on Fridays and Saturdays"
	msgBookingLocked      = "booking is already submitting or completed"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/wizard/sessions/{sessionId}/booking/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("PUT /wizard/sessions/{id}/booking/date - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/sessions/{id}/booking/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /wizard/sessions/{id}/booking/date - Invalid date: session=%s date=%q", sessionID, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	session, err := h.service.SelectDate(r.Context(), sessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /wizard/sessions/{id}/booking/date - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, wizard.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)
		case errors.Is(err, wizard.ErrClosedWeekday):
			handlers.RespondBadRequest(w, msgClosedWeekday)
		case errors.Is(err, wizard.ErrBookingLocked):
			handlers.RespondConflict(w, msgBookingLocked)
		default:
			h.logger.Error("PUT /wizard/sessions/{id}/booking/date - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.FromSession(session))
}
