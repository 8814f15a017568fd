package navigate_session

import (
	"context"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

type WizardService interface {
	Navigate(ctx context.Context, id uuid.UUID, action string, target int) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
