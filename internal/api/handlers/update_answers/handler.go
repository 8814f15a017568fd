package update_answers

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
	msgInvalidStep        = "step is not the current step"
	msgInvalidAnswer      = "invalid answer field or value"
	msgNoFields           = "no fields to update"
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

// Handle PATCH /api/v1/wizard/sessions/{sessionId}/answers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("PATCH /wizard/sessions/{id}/answers - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req UpdateAnswersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard/sessions/{id}/answers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(req.Fields) == 0 {
		handlers.RespondBadRequest(w, msgNoFields)
		return
	}

	session, err := h.service.UpdateAnswers(r.Context(), sessionID, req.Step, req.Fields)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PATCH /wizard/sessions/{id}/answers - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrInvalidStep):
			h.logger.Warn("PATCH /wizard/sessions/{id}/answers - Invalid step: session=%s step=%q", sessionID, req.Step)
			handlers.RespondConflict(w, msgInvalidStep)
		case errors.Is(err, wizard.ErrInvalidAnswer):
			h.logger.Warn("PATCH /wizard/sessions/{id}/answers - Invalid answer: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidAnswer)
		default:
			h.logger.Error("PATCH /wizard/sessions/{id}/answers - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.FromSession(session))
}
