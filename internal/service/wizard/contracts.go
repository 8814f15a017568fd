package wizard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create(ctx context.Context, session *domain.WizardSession) error
	Get(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.WizardSession) error) (*domain.WizardSession, error)
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

// Metrics интерфейс бизнес-метрик визарда. Может быть nil.
type Metrics interface {
	IncSessionStarted(flow string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
