// Package views содержит общие view-модели ответов API.
// Представление сессии используется всеми операциями визарда.
package views

import (
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/internal/service/wizard"
	"github.com/shamal-freight/SFB-LeadService/pkg/ptr"
)

// SessionView HTTP представление сессии визарда
type SessionView struct {
	SessionID string            `json:"sessionId"`
	Flow      string            `json:"flow"`
	Step      StepView          `json:"step"`
	Answers   map[string]string `json:"answers"`
	Booking   BookingView       `json:"booking"`
}

// StepView текущий шаг с текстами для отрисовки
type StepView struct {
	ID          string `json:"id"`
	Index       int    `json:"index"`
	Count       int    `json:"count"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BookingView состояние шага бронирования
type BookingView struct {
	State        string  `json:"state"`
	SelectedDate *string `json:"selectedDate,omitempty"`
	SelectedTime *string `json:"selectedTime,omitempty"`
}

// FromSession строит представление сессии с текстами текущего шага
func FromSession(session *domain.WizardSession) *SessionView {
	stepCopy := wizard.CopyFor(session)

	view := &SessionView{
		SessionID: session.ID.String(),
		Flow:      string(session.Flow),
		Step: StepView{
			ID:          string(stepCopy.Step),
			Index:       session.StepIndex,
			Count:       session.StepCount(),
			Title:       stepCopy.Title,
			Description: stepCopy.Description,
		},
		Answers: session.Answers.Fields(),
		Booking: BookingView{
			State: string(session.Booking.State),
		},
	}

	if d := session.Booking.SelectedDate; d != nil {
		view.Booking.SelectedDate = ptr.Ptr(d.Format(domain.DateFormat))
	}
	if t := session.Booking.SelectedTime; t != nil {
		view.Booking.SelectedTime = ptr.Ptr(t.String())
	}
	return view
}
