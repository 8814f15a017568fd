package submit_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// emailPattern базовая проверка вида local@domain.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if _, err := domain.ParseIntent(req.Intent); err != nil {
		return fmt.Errorf("%w: intent=%q", ErrInvalidInput, req.Intent)
	}
	return nil
}

// validateBookingFields проверяет обязательные поля пути book-now.
// Любой недочёт — ErrValidation, backend при этом не вызывается.
func validateBookingFields(session *domain.WizardSession, name, email string) error {
	if session.Booking.SelectedDate == nil {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if session.Booking.SelectedTime == nil {
		return fmt.Errorf("%w: time is required", ErrValidation)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrValidation)
	}

	if len(email) > domain.MaxEmailLength || !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	return nil
}
