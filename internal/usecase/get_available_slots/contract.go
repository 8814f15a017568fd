package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// SchedulingClient интерфейс клиента scheduling backend
type SchedulingClient interface {
	// GetSubmissionsByDate возвращает booked-set на указанную дату
	GetSubmissionsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error)

	// CommitBookedView фиксирует снимок booked-set, если его поколение актуально
	CommitBookedView(ctx context.Context, id uuid.UUID, view *domain.BookedSetView) error
}

// Metrics интерфейс бизнес-метрик. Может быть nil.
type Metrics interface {
	IncSlotFetchError()
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
