package select_date

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

type WizardService interface {
	SelectDate(ctx context.Context, id uuid.UUID, date time.Time) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
