package get_available_slots

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("get_available_slots: session not found")

	// ErrDateNotSelected возвращается, когда в сессии ещё не выбрана дата
	ErrDateNotSelected = errors.New("get_available_slots: no date selected")

	// ErrInvalidTimezone возвращается при неизвестной IANA зоне посетителя
	ErrInvalidTimezone = errors.New("get_available_slots: invalid viewer timezone")

	// ErrSlotsFetch возвращается, когда booked-set не удалось получить.
	// Восстановимая ошибка: обработчик отдаёт её с признаком retryable.
	ErrSlotsFetch = errors.New("get_available_slots: failed to fetch booked slots")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
