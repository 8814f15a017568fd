package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking window constants
const (
	// MaxAdvanceBookingDays максимальный горизонт бронирования консультации
	MaxAdvanceBookingDays = 30

	// MorningBoundaryHour граница между утренними и вечерними слотами
	// по местному времени посетителя
	MorningBoundaryHour = 12
)

// Broker defaults
const (
	// DefaultBrokerUTCOffsetHours фиксированное смещение времени брокера.
	// Каталог слотов интерпретируется как Arabia Standard Time (UTC+3, без DST).
	DefaultBrokerUTCOffsetHours = 3
)

// Contact validation constants
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

// ClosedWeekdays выходные дни брокера: консультации не проводятся
var ClosedWeekdays = []time.Weekday{time.Friday, time.Saturday}

// IsBookableWeekday возвращает true, если в этот день недели брокер принимает консультации
func IsBookableWeekday(day time.Weekday) bool {
	for _, closed := range ClosedWeekdays {
		if day == closed {
			return false
		}
	}
	return true
}
