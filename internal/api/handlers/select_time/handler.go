package select_time

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers"
	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers/views"
	"github.com/shamal-freight/SFB-LeadService/internal/service/wizard"
)

const (
	msgInvalidSessionID   = "invalid session ID"
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgDateNotSelected    = "select a date first"
	msgTimeNotInCatalog   = "time is not offered for this wizard"
	msgTimeUnavailable    = "time slot is already booked"
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

// Handle PUT /api/v1/wizard/sessions/{sessionId}/booking/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("PUT /wizard/sessions/{id}/booking/time - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/sessions/{id}/booking/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectTime(r.Context(), sessionID, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /wizard/sessions/{id}/booking/time - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrDateNotSelected):
			handlers.RespondConflict(w, msgDateNotSelected)
		case errors.Is(err, wizard.ErrTimeNotInCatalog):
			handlers.RespondBadRequest(w, msgTimeNotInCatalog)
		case errors.Is(err, wizard.ErrTimeUnavailable):
			handlers.RespondConflict(w, msgTimeUnavailable)
		case errors.Is(err, wizard.ErrBookingLocked):
			handlers.RespondConflict(w, msgBookingLocked)
		default:
			h.logger.Error("PUT /wizard/sessions/{id}/booking/time - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.FromSession(session))
}
