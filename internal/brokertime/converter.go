// Package brokertime converts the fixed broker-local slot labels into the
// visitor's timezone. The broker clock is Arabia Standard Time, modeled as a
// fixed UTC offset with no DST. The offset is configured once here; nothing
// else in the service knows it.
package brokertime

import (
	"errors"
	"fmt"
	"time"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/pkg/types"
)

// ErrInvalidTimezone возвращается при неизвестной IANA зоне посетителя
var ErrInvalidTimezone = errors.New("brokertime: invalid viewer timezone")

// Converter переводит метки времени брокера в зону посетителя и обратно
type Converter struct {
	loc *time.Location
}

// NewConverter создает конвертер для фиксированного смещения брокера (в часах от UTC)
func NewConverter(utcOffsetHours int) *Converter {
	return &Converter{
		loc: time.FixedZone("AST", utcOffsetHours*3600),
	}
}

// BrokerLocation возвращает фиксированную зону брокера
func (c *Converter) BrokerLocation() *time.Location {
	return c.loc
}

// ViewerLocation резолвит IANA зону посетителя.
// Пустая строка трактуется как UTC, неизвестная зона — ошибка.
func ViewerLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	return loc, nil
}

// Instant совмещает метку брокера с календарной датой в зоне брокера.
// Результат — момент времени, который уходит в payload отправки.
func (c *Converter) Instant(label types.TimeLabel, date time.Time) time.Time {
	return label.OnDate(date, c.loc)
}

// ToViewer переводит метку брокера на указанную дату в зону посетителя
func (c *Converter) ToViewer(label types.TimeLabel, date time.Time, viewer *time.Location) types.TimeLabel {
	return types.NewTimeLabel(c.Instant(label, date).In(viewer))
}

// ToBroker обратное преобразование: местная метка посетителя → метка брокера.
// Для зон с целочасовым смещением ToBroker(ToViewer(l)) == l.
func (c *Converter) ToBroker(local types.TimeLabel, date time.Time, viewer *time.Location) types.TimeLabel {
	return types.NewTimeLabel(local.OnDate(date, viewer).In(c.loc))
}

// IsMorning классифицирует МЕСТНЫЙ час посетителя: утро — до 12:00,
// иначе вечер. Классификация не зависит от часа брокера.
func IsMorning(local types.TimeLabel) bool {
	return local.Hour() < domain.MorningBoundaryHour
}

// Daypart возвращает группу слота для каталогов с группировкой утро/вечер
func Daypart(local types.TimeLabel) domain.SlotGroup {
	if IsMorning(local) {
		return domain.GroupMorning
	}
	return domain.GroupEvening
}
