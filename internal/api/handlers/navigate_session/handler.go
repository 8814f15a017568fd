package navigate_session

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
	msgInvalidAction      = "unknown navigation action"
	msgStepOutOfRange     = "step index out of range"
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

// Handle POST /api/v1/wizard/sessions/{sessionId}/navigation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/navigation - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/navigation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Navigate(r.Context(), sessionID, req.Action, req.Step)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/navigation - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrInvalidAction):
			h.logger.Warn("POST /wizard/sessions/{id}/navigation - Invalid action: session=%s action=%q", sessionID, req.Action)
			handlers.RespondBadRequest(w, msgInvalidAction)
		case errors.Is(err, wizard.ErrStepOutOfRange):
			h.logger.Warn("POST /wizard/sessions/{id}/navigation - Step out of range: session=%s action=%s step=%d", sessionID, req.Action, req.Step)
			handlers.RespondBadRequest(w, msgStepOutOfRange)
		default:
			h.logger.Error("POST /wizard/sessions/{id}/navigation - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.FromSession(session))
}
