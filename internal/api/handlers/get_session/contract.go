package get_session

import (
	"context"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

type WizardService interface {
	GetSession(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
