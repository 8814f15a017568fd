package schedulingapi

import "time"

// bookedSlotPayload запись занятого слота в ответе backend
type bookedSlotPayload struct {
	SelectedTime string `json:"selectedTime"`
	UserName     string `json:"userName"`
}

// submissionsByDateResponse обёртка ответа by-date.
// Старый вариант backend отдаёт массив без обёртки, он разбирается отдельно.
type submissionsByDateResponse struct {
	Success bool                `json:"success"`
	Data    []bookedSlotPayload `json:"data"`
}

// Submission единый контракт финальной отправки. Оба эндпоинта backend
// (фрахтовый и автомобильный) принимают этот payload; маршрут выбирается
// по полю Flow.
type Submission struct {
	Flow    string            `json:"flow"`
	Intent  string            `json:"intent"` // book-now | wait-24-hours
	Answers map[string]string `json:"answers"`

	// Booking заполняется только для intent=book-now
	Booking *BookingDetails `json:"booking,omitempty"`
}

// BookingDetails финализированные данные консультации
type BookingDetails struct {
	Date         string    `json:"date"`         // YYYY-MM-DD
	SelectedTime string    `json:"selectedTime"` // метка времени брокера, например "7:00 PM"
	ScheduledAt  time.Time `json:"scheduledAt"`  // дата+время одним моментом
	Timezone     string    `json:"timezone"`     // IANA зона посетителя
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
}

// ErrorResponse модель ошибки от backend
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
