package schedulingapi

import "errors"

var (
	// ErrFetchSlots возвращается, когда booked-set не удалось получить
	// (сеть, не-2xx или нечитаемое тело). Всегда восстановимая ошибка:
	// пользователю показывается пустой список с возможностью повтора.
	ErrFetchSlots = errors.New("schedulingapi client: failed to fetch booked slots")

	// ErrSubmission возвращается, когда backend отклонил или не принял финальную отправку
	ErrSubmission = errors.New("schedulingapi client: submission rejected")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedulingapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedulingapi client: internal error")
)
