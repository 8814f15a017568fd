package submit_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shamal-freight/SFB-LeadService/internal/api/handlers"
	usecase "github.com/shamal-freight/SFB-LeadService/internal/usecase/submit_booking"
)

const (
	msgInvalidSessionID   = "invalid session ID"
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgValidationFailed   = "missing or invalid booking fields"
	msgSlotConflict       = "selected time was just booked, pick another"
	msgSubmissionInFlight = "submission is already in progress"
	msgAlreadySubmitted   = "session was already submitted"
	msgSubmissionFailed   = "submission failed, try again"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/submit - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &usecase.Request{
		SessionID: sessionID,
		Intent:    req.Intent,
		ViewerTZ:  req.Timezone,
		Name:      req.Name,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrValidation):
			handlers.RespondBadRequest(w, msgValidationFailed)
		case errors.Is(err, usecase.ErrSlotConflict):
			handlers.RespondConflict(w, msgSlotConflict)
		case errors.Is(err, usecase.ErrSubmissionInFlight):
			handlers.RespondConflict(w, msgSubmissionInFlight)
		case errors.Is(err, usecase.ErrAlreadySubmitted):
			handlers.RespondConflict(w, msgAlreadySubmitted)
		case errors.Is(err, usecase.ErrSubmission):
			h.logger.Error("POST /wizard/sessions/{id}/submit - Backend rejected: session=%s, error=%v", sessionID, err)
			handlers.RespondRetryableError(w, http.StatusBadGateway, msgSubmissionFailed)
		default:
			h.logger.Error("POST /wizard/sessions/{id}/submit - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(result))
}
