package submit_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// Request модель запроса финальной отправки
type Request struct {
	SessionID uuid.UUID
	Intent    string // book-now | wait-24-hours
	ViewerTZ  string // IANA зона посетителя (для payload бронирования)

	// Контактные данные, обязательны для intent=book-now
	Name  string
	Email string
}

// Response модель ответа успешной отправки
type Response struct {
	Flow   domain.FlowKind
	Intent domain.Intent

	// Заполняются только для intent=book-now
	Date         *time.Time
	SelectedTime string    // метка времени брокера
	ScheduledAt  time.Time // дата+время одним моментом (zero для wait-24-hours)

	SubmittedAt time.Time
}
