package domain

import (
	"errors"
	"time"

	"github.com/shamal-freight/SFB-LeadService/pkg/types"
)

// BookingState represents the state of the booking step
type BookingState string

const (
	BookingIdle             BookingState = "idle"
	BookingDateSelected     BookingState = "date_selected"
	BookingTimeSelected     BookingState = "time_selected"
	BookingContactEntered   BookingState = "contact_entered"
	BookingSubmitting       BookingState = "submitting"
	BookingSubmittedSuccess BookingState = "submitted_success"
	BookingSubmitFailed     BookingState = "submit_failed"
)

// IsTerminal returns true if no further transitions are allowed.
// SubmitFailed намеренно не терминальный: выбор сохраняется, можно повторить.
func (s BookingState) IsTerminal() bool {
	return s == BookingSubmittedSuccess
}

// CanSelectDate returns true if a new date may be selected from this state
func (s BookingState) CanSelectDate() bool {
	return s != BookingSubmitting && !s.IsTerminal()
}

// CanSelectTime returns true if a time may be selected from this state
func (s BookingState) CanSelectTime() bool {
	switch s {
	case BookingDateSelected, BookingTimeSelected, BookingContactEntered, BookingSubmitFailed:
		return true
	default:
		return false
	}
}

// CanSubmit returns true if a final submission may be attempted from this state
func (s BookingState) CanSubmit() bool {
	switch s {
	case BookingTimeSelected, BookingContactEntered, BookingSubmitFailed:
		return true
	default:
		return false
	}
}

// Intent дискриминатор финальной отправки
type Intent string

const (
	IntentBookNow     Intent = "book-now"
	IntentWait24Hours Intent = "wait-24-hours"
)

// ErrUnknownIntent возвращается при неизвестном значении intent
var ErrUnknownIntent = errors.New("unknown submission intent")

// ParseIntent валидирует строковое значение intent
func ParseIntent(s string) (Intent, error) {
	switch Intent(s) {
	case IntentBookNow, IntentWait24Hours:
		return Intent(s), nil
	default:
		return "", ErrUnknownIntent
	}
}

// BookedSetView снимок booked-set для одной даты. Полностью замещается при
// каждой успешной загрузке; между датами никогда не переиспользуется.
type BookedSetView struct {
	Date      time.Time
	Gen       int64 // поколение запроса, на котором снимок был получен
	Labels    []string
	FetchedAt time.Time
}

// Contains возвращает true, если метка брокера занята в этом снимке.
// Сравнение строго по строковому равенству меток.
func (v *BookedSetView) Contains(label string) bool {
	if v == nil {
		return false
	}
	for _, l := range v.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Clone возвращает независимую копию снимка
func (v *BookedSetView) Clone() *BookedSetView {
	if v == nil {
		return nil
	}
	c := *v
	c.Labels = append([]string(nil), v.Labels...)
	return &c
}

// BookingProgress состояние шага бронирования внутри сессии
type BookingProgress struct {
	State BookingState

	SelectedDate *time.Time
	SelectedTime *types.TimeLabel

	Name  string
	Email string

	// FetchGen монотонный счётчик выборов даты. Загрузка booked-set,
	// начатая на устаревшем поколении, не должна перезаписать актуальный вид.
	FetchGen int64

	// BookedView последний зафиксированный снимок booked-set выбранной даты
	BookedView *BookedSetView
}

// Clone возвращает глубокую копию прогресса бронирования
func (b BookingProgress) Clone() BookingProgress {
	c := b
	if b.SelectedDate != nil {
		d := *b.SelectedDate
		c.SelectedDate = &d
	}
	if b.SelectedTime != nil {
		t := *b.SelectedTime
		c.SelectedTime = &t
	}
	c.BookedView = b.BookedView.Clone()
	return c
}
