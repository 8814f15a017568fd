package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers"
	usecase "github.com/shamal-freight/SFB-LeadService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSessionID = "invalid session ID"
	msgInvalidTimezone  = "invalid timezone"
	msgSessionNotFound  = "session not found"
	msgDateNotSelected  = "select a date first"
	msgSlotsFetchFailed = "failed to load available slots, try again"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard/sessions/{sessionId}/slots?tz={IANA}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("GET /wizard/sessions/{id}/slots - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	req := &usecase.Request{
		SessionID: sessionID,
		ViewerTZ:  r.URL.Query().Get("tz"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id}/slots - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, usecase.ErrDateNotSelected):
			handlers.RespondConflict(w, msgDateNotSelected)
		case errors.Is(err, usecase.ErrInvalidTimezone):
			handlers.RespondBadRequest(w, msgInvalidTimezone)
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSessionID)
		case errors.Is(err, usecase.ErrSlotsFetch):
			h.logger.Error("GET /wizard/sessions/{id}/slots - Fetch failed: session=%s, error=%v", sessionID, err)
			handlers.RespondRetryableError(w, http.StatusBadGateway, msgSlotsFetchFailed)
		default:
			h.logger.Error("GET /wizard/sessions/{id}/slots - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}
