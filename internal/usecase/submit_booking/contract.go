package submit_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/internal/integrations/schedulingapi"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.WizardSession) error) (*domain.WizardSession, error)
	CommitBookedView(ctx context.Context, id uuid.UUID, view *domain.BookedSetView) error
}

// SchedulingClient интерфейс клиента scheduling backend
type SchedulingClient interface {
	GetSubmissionsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error)
	Submit(ctx context.Context, sub *schedulingapi.Submission) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Metrics интерфейс бизнес-метрик. Может быть nil.
type Metrics interface {
	IncSubmission(intent, status string)
	IncSlotConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
