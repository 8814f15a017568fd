package get_session

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
	msgInvalidSessionID = "invalid session ID"
	msgSessionNotFound  = "session not found"
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

// Handle GET /api/v1/wizard/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("GET /wizard/sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /wizard/sessions/{id} - Failed to get session: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, views.FromSession(session))
}
