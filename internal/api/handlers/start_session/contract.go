package start_session

import (
	"context"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

type WizardService interface {
	StartSession(ctx context.Context, flow string) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
