package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shamal-freight/SFB-LeadService/internal/brokertime"
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/internal/infra/sessionstore"
	"github.com/shamal-freight/SFB-LeadService/internal/integrations/schedulingapi"
)

// UseCase use case финальной отправки заявки.
// Гарантирует не более одной успешной отправки на сессию: вход в отправку
// защищён переводом состояния в Submitting под блокировкой хранилища.
type UseCase struct {
	store        SessionStore
	client       SchedulingClient
	converter    *brokertime.Converter
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	client SchedulingClient,
	converter *brokertime.Converter,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		client:       client,
		converter:    converter,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет финальную отправку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}
	intent, _ := domain.ParseIntent(req.Intent)

	uc.logger.Info("SubmitBooking: session=%s intent=%s", req.SessionID, intent)

	// 2. Захватываем отправку: валидируем поля и переводим состояние
	// в Submitting одной операцией под блокировкой. Параллельная попытка
	// увидит Submitting и будет отклонена.
	session, err := uc.acquireSubmit(ctx, req, intent)
	if err != nil {
		return nil, err
	}

	// 3. Для book-now — повторная проверка занятости слота на момент
	// отправки. Защита только на стороне клиента backend'а: двое могут
	// успеть одновременно, это best-effort UX, а не гарантия.
	if intent == domain.IntentBookNow {
		if err := uc.recheckSlot(ctx, req, session); err != nil {
			return nil, err
		}
	}

	// 4. Собираем payload и отправляем
	submission := uc.buildSubmission(session, intent, req)

	if err := uc.client.Submit(ctx, submission); err != nil {
		uc.logger.Error("SubmitBooking: session=%s submit failed: %v", req.SessionID, err)
		uc.releaseSubmit(ctx, req, domain.BookingSubmitFailed)
		uc.observeSubmission(intent, "failed")
		return nil, fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	// 5. Фиксируем успех: состояние терминальное, анкета больше не меняется
	if _, err := uc.store.Update(ctx, req.SessionID, func(s *domain.WizardSession) error {
		s.Booking.State = domain.BookingSubmittedSuccess
		return nil
	}); err != nil {
		// Отправка уже прошла: не превращаем её в ошибку пользователю
		uc.logger.Error("SubmitBooking: session=%s failed to finalize state: %v", req.SessionID, err)
	}

	uc.observeSubmission(intent, "success")
	uc.logger.Info("SubmitBooking: session=%s submitted successfully", req.SessionID)

	resp := &Response{
		Flow:        session.Flow,
		Intent:      intent,
		SubmittedAt: uc.timeProvider.Now(),
	}
	if submission.Booking != nil {
		resp.Date = session.Booking.SelectedDate
		resp.SelectedTime = submission.Booking.SelectedTime
		resp.ScheduledAt = submission.Booking.ScheduledAt
	}
	return resp, nil
}

// acquireSubmit валидирует запрос и атомарно переводит сессию в Submitting
func (uc *UseCase) acquireSubmit(ctx context.Context, req *Request, intent domain.Intent) (*domain.WizardSession, error) {
	session, err := uc.store.Update(ctx, req.SessionID, func(s *domain.WizardSession) error {
		if s.Booking.State == domain.BookingSubmitting {
			return ErrSubmissionInFlight
		}
		if s.IsCompleted() {
			return ErrAlreadySubmitted
		}

		if intent == domain.IntentBookNow {
			if !s.Booking.State.CanSubmit() {
				return fmt.Errorf("%w: booking state %q does not allow submission", ErrValidation, s.Booking.State)
			}
			if err := validateBookingFields(s, req.Name, req.Email); err != nil {
				return err
			}
			s.Booking.Name = strings.TrimSpace(req.Name)
			s.Booking.Email = req.Email
			s.Booking.State = domain.BookingContactEntered
		}

		s.Booking.State = domain.BookingSubmitting
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Warn("SubmitBooking: session=%s acquire failed: %v", req.SessionID, err)
		return nil, err
	}
	return session, nil
}

// recheckSlot заново загружает booked-set и проверяет выбранное время.
// Занятый слот: отправка прерывается, время сбрасывается, требуется новый
// выбор. Ошибка самой загрузки проверку не блокирует — это best-effort.
func (uc *UseCase) recheckSlot(ctx context.Context, req *Request, session *domain.WizardSession) error {
	date := *session.Booking.SelectedDate
	label := session.Booking.SelectedTime.String()

	booked, err := uc.client.GetSubmissionsByDate(ctx, date)
	if err != nil {
		uc.logger.Warn("SubmitBooking: session=%s recheck fetch failed, proceeding: %v", req.SessionID, err)
		return nil
	}

	taken := false
	for _, b := range booked {
		if b.SelectedTime == label {
			taken = true
			break
		}
	}
	if !taken {
		return nil
	}

	if uc.metrics != nil {
		uc.metrics.IncSlotConflict()
	}
	uc.logger.Warn("SubmitBooking: session=%s slot %s on %s was just booked",
		req.SessionID, label, date.Format(domain.DateFormat))

	// Обновляем снимок и откатываем выбор времени
	labels := make([]string, len(booked))
	for i, b := range booked {
		labels[i] = b.SelectedTime
	}
	if _, err := uc.store.Update(ctx, req.SessionID, func(s *domain.WizardSession) error {
		s.Booking.SelectedTime = nil
		s.Booking.State = domain.BookingDateSelected
		s.Booking.BookedView = &domain.BookedSetView{
			Date:      date,
			Gen:       s.Booking.FetchGen,
			Labels:    labels,
			FetchedAt: uc.timeProvider.Now(),
		}
		return nil
	}); err != nil {
		uc.logger.Error("SubmitBooking: session=%s failed to reset after conflict: %v", req.SessionID, err)
	}

	return ErrSlotConflict
}

// releaseSubmit возвращает сессию из Submitting в указанное состояние,
// сохраняя выбор даты/времени для повтора
func (uc *UseCase) releaseSubmit(ctx context.Context, req *Request, state domain.BookingState) {
	if _, err := uc.store.Update(ctx, req.SessionID, func(s *domain.WizardSession) error {
		s.Booking.State = state
		return nil
	}); err != nil {
		uc.logger.Error("SubmitBooking: session=%s failed to release submit: %v", req.SessionID, err)
	}
}

// buildSubmission собирает единый payload отправки
func (uc *UseCase) buildSubmission(session *domain.WizardSession, intent domain.Intent, req *Request) *schedulingapi.Submission {
	sub := &schedulingapi.Submission{
		Flow:    string(session.Flow),
		Intent:  string(intent),
		Answers: session.Answers.Fields(),
	}

	if intent == domain.IntentBookNow {
		date := *session.Booking.SelectedDate
		label := *session.Booking.SelectedTime
		sub.Booking = &schedulingapi.BookingDetails{
			Date:         date.Format(domain.DateFormat),
			SelectedTime: label.String(),
			ScheduledAt:  uc.converter.Instant(label, date),
			Timezone:     req.ViewerTZ,
			UserName:     session.Booking.Name,
			Email:        session.Booking.Email,
		}
	}
	return sub
}

func (uc *UseCase) observeSubmission(intent domain.Intent, status string) {
	if uc.metrics != nil {
		uc.metrics.IncSubmission(string(intent), status)
	}
}
