package domain

import (
	"time"

	"github.com/google/uuid"
)

// WizardSession полное состояние одного прохождения визарда.
// Создается пустым при старте, наполняется по шагам и отбрасывается
// после успешной отправки или по TTL.
type WizardSession struct {
	ID        uuid.UUID
	Flow      FlowKind
	Answers   Answers
	StepIndex int
	Booking   BookingProgress

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWizardSession создает новую сессию визарда с пустой анкетой
func NewWizardSession(kind FlowKind, now time.Time) (*WizardSession, error) {
	answers, err := NewAnswers(kind)
	if err != nil {
		return nil, err
	}
	return &WizardSession{
		ID:        uuid.New(),
		Flow:      kind,
		Answers:   answers,
		StepIndex: 0,
		Booking:   BookingProgress{State: BookingIdle},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Clone возвращает глубокую копию сессии. Копия не делит с оригиналом
// ни анкету, ни указатели бронирования.
func (s *WizardSession) Clone() *WizardSession {
	c := *s
	c.Answers = s.Answers.Clone()
	c.Booking = s.Booking.Clone()
	return &c
}

// Steps возвращает последовательность шагов сессии
func (s *WizardSession) Steps() []StepID {
	return StepsFor(s.Flow)
}

// CurrentStep возвращает идентификатор текущего шага
func (s *WizardSession) CurrentStep() StepID {
	steps := s.Steps()
	if s.StepIndex < 0 || s.StepIndex >= len(steps) {
		return ""
	}
	return steps[s.StepIndex]
}

// StepCount возвращает количество шагов визарда
func (s *WizardSession) StepCount() int {
	return len(s.Steps())
}

// IsCompleted возвращает true, если сессия завершена успешной отправкой
func (s *WizardSession) IsCompleted() bool {
	return s.Booking.State.IsTerminal()
}
