package types

import (
	"errors"
	"fmt"
	"time"
)

// LabelFormat формат времени слота в 12-часовом виде (например, "7:00 PM")
const LabelFormat = "3:04 PM"

var (
	// ErrInvalidTimeLabel возвращается при некорректном формате метки времени
	ErrInvalidTimeLabel = errors.New("types: invalid time label format")

	// ErrOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrOutOfRange = errors.New("types: time label out of day range")
)

// TimeLabel метка времени слота в пределах одних суток.
// Хранится как количество минут с полуночи, отображается в 12-часовом формате.
type TimeLabel struct {
	minutes int
}

// NewTimeLabel создает метку из time.Time (берёт только часы и минуты)
func NewTimeLabel(t time.Time) TimeLabel {
	return TimeLabel{minutes: t.Hour()*60 + t.Minute()}
}

// ParseTimeLabel парсит метку из строки вида "10:30 AM"
func ParseTimeLabel(s string) (TimeLabel, error) {
	t, err := time.Parse(LabelFormat, s)
	if err != nil {
		return TimeLabel{}, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, s)
	}
	return NewTimeLabel(t), nil
}

// String возвращает метку в 12-часовом формате
func (l TimeLabel) String() string {
	return time.Date(0, 1, 1, l.minutes/60, l.minutes%60, 0, 0, time.UTC).Format(LabelFormat)
}

// Hour возвращает час метки (0-23)
func (l TimeLabel) Hour() int {
	return l.minutes / 60
}

// Minutes возвращает количество минут с полуночи
func (l TimeLabel) Minutes() int {
	return l.minutes
}

// IsBefore возвращает true, если метка строго раньше other
func (l TimeLabel) IsBefore(other TimeLabel) bool {
	return l.minutes < other.minutes
}

// IsAfter возвращает true, если метка строго позже other
func (l TimeLabel) IsAfter(other TimeLabel) bool {
	return l.minutes > other.minutes
}

// AddMinutes возвращает метку, сдвинутую на minutes минут вперёд.
// Выход за пределы суток считается ошибкой: слоты не пересекают полночь.
func (l TimeLabel) AddMinutes(minutes int) (TimeLabel, error) {
	total := l.minutes + minutes
	if total < 0 || total >= 24*60 {
		return TimeLabel{}, ErrOutOfRange
	}
	return TimeLabel{minutes: total}, nil
}

// OnDate совмещает метку с календарной датой в указанной временной зоне
func (l TimeLabel) OnDate(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), l.minutes/60, l.minutes%60, 0, 0, loc)
}
