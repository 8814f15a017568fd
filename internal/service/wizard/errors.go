package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrUnknownFlow возвращается при неизвестном типе визарда
	ErrUnknownFlow = errors.New("wizard: unknown flow")

	// ErrInvalidStep возвращается, когда шаг не является текущим шагом сессии
	ErrInvalidStep = errors.New("wizard: step is not the current step")

	// ErrInvalidAnswer возвращается при некорректном поле или значении анкеты
	ErrInvalidAnswer = errors.New("wizard: invalid answer")

	// ErrInvalidAction возвращается при неизвестном действии навигации
	ErrInvalidAction = errors.New("wizard: invalid navigation action")

	// ErrStepOutOfRange возвращается при переходе за пределы шагов визарда
	ErrStepOutOfRange = errors.New("wizard: step index out of range")

	// ErrDateInPast возвращается при выборе прошедшей даты
	ErrDateInPast = errors.New("wizard: date is in the past")

	// ErrDateTooFarInFuture возвращается при выборе даты дальше горизонта бронирования
	ErrDateTooFarInFuture = errors.New("wizard: date is too far in the future")

	// ErrClosedWeekday возвращается при выборе выходного дня брокера (пятница/суббота)
	ErrClosedWeekday = errors.New("wizard: broker is closed on this weekday")

	// ErrDateNotSelected возвращается при операциях, требующих выбранной даты
	ErrDateNotSelected = errors.New("wizard: no date selected")

	// ErrTimeNotInCatalog возвращается, когда время отсутствует в каталоге визарда
	ErrTimeNotInCatalog = errors.New("wizard: time is not in the slot catalog")

	// ErrTimeUnavailable возвращается, когда время уже занято по актуальному booked-set
	ErrTimeUnavailable = errors.New("wizard: time slot is already booked")

	// ErrBookingLocked возвращается, когда бронирование отправляется или уже завершено
	ErrBookingLocked = errors.New("wizard: booking is submitting or completed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
