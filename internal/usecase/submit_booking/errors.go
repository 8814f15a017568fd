package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrValidation возвращается при отсутствующих или некорректных
	// обязательных полях (дата, время, имя, email). Отправка блокируется,
	// backend не вызывается.
	ErrValidation = errors.New("submit_booking: validation failed")

	// ErrSlotConflict возвращается, когда выбранный слот оказался занят
	// при проверке на момент отправки. Требуется выбрать другое время.
	ErrSlotConflict = errors.New("submit_booking: slot was just booked")

	// ErrSubmission возвращается, когда backend отклонил или не принял
	// отправку. Состояние сессии сохраняется для повтора.
	ErrSubmission = errors.New("submit_booking: submission failed")

	// ErrSubmissionInFlight возвращается при параллельной попытке отправки
	ErrSubmissionInFlight = errors.New("submit_booking: submission already in flight")

	// ErrAlreadySubmitted возвращается после успешного завершения сессии
	ErrAlreadySubmitted = errors.New("submit_booking: session already submitted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
