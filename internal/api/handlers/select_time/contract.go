package select_time

import (
	"context"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

type WizardService interface {
	SelectTime(ctx context.Context, id uuid.UUID, label string) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
