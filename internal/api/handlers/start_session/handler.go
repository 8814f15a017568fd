package start_session

import (
	"errors"
	"net/http"

	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers"
	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers/views"
	"github.com/shamal-freight/SFB-LeadService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownFlow        = "unknown wizard flow"
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

// Handle POST /api/v1/wizard/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.StartSession(r.Context(), req.Flow)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrUnknownFlow):
			h.logger.Warn("POST /wizard/sessions - Unknown flow: %q", req.Flow)
			handlers.RespondBadRequest(w, msgUnknownFlow)
		default:
			h.logger.Error("POST /wizard/sessions - Failed to start session: flow=%q, error=%v", req.Flow, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions - Session started: session=%s flow=%s", session.ID, session.Flow)
	handlers.RespondJSON(w, http.StatusCreated, views.FromSession(session))
}
