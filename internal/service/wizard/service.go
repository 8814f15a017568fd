package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/internal/infra/sessionstore"
	"github.com/shamal-freight/SFB-LeadService/pkg/types"
)

// NavigationAction действие навигации по шагам
type NavigationAction string

const (
	ActionNext NavigationAction = "next"
	ActionPrev NavigationAction = "prev"
	ActionGoto NavigationAction = "goto"
)

// Service сервис состояния визарда: жизненный цикл сессий, пошаговое
// заполнение анкеты, навигация и выбор даты/времени консультации
type Service struct {
	store        SessionStore
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса визарда.
// metrics может быть nil.
func NewService(store SessionStore, metrics Metrics, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// StartSession создает новую сессию визарда указанного типа
func (s *Service) StartSession(ctx context.Context, flow string) (*domain.WizardSession, error) {
	kind, err := domain.ParseFlowKind(flow)
	if err != nil {
		s.logger.Warn("StartSession: unknown flow %q", flow)
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}

	session, err := domain.NewWizardSession(kind, s.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.store.Create(ctx, session); err != nil {
		s.logger.Error("StartSession: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.IncSessionStarted(string(kind))
	}
	s.logger.Info("StartSession: session=%s flow=%s", session.ID, kind)
	return session, nil
}

// GetSession возвращает сессию по ID
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return session, nil
}

// UpdateAnswers записывает поля анкеты от имени шага step.
// Шаг обязан быть текущим шагом сессии: поле изменяется только своим шагом.
// Пакет полей применяется атомарно: ошибка в любом поле отклоняет весь PATCH.
func (s *Service) UpdateAnswers(ctx context.Context, id uuid.UUID, step string, fields map[string]string) (*domain.WizardSession, error) {
	session, err := s.store.Update(ctx, id, func(session *domain.WizardSession) error {
		if domain.StepID(step) != session.CurrentStep() {
			return fmt.Errorf("%w: %q (current is %q)", ErrInvalidStep, step, session.CurrentStep())
		}
		draft := session.Answers.Clone()
		for field, value := range fields {
			if err := draft.SetField(domain.StepID(step), field, value); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
			}
		}
		session.Answers = draft
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Warn("UpdateAnswers: session=%s step=%s: %v", id, step, err)
		return nil, err
	}

	s.logger.Info("UpdateAnswers: session=%s step=%s fields=%d", id, step, len(fields))
	return session, nil
}

// Navigate перемещает сессию по шагам: next/prev/goto
func (s *Service) Navigate(ctx context.Context, id uuid.UUID, action string, target int) (*domain.WizardSession, error) {
	session, err := s.store.Update(ctx, id, func(session *domain.WizardSession) error {
		switch NavigationAction(action) {
		case ActionNext:
			if session.StepIndex+1 >= session.StepCount() {
				return ErrStepOutOfRange
			}
			session.StepIndex++
		case ActionPrev:
			if session.StepIndex == 0 {
				return ErrStepOutOfRange
			}
			session.StepIndex--
		case ActionGoto:
			if target < 0 || target >= session.StepCount() {
				return fmt.Errorf("%w: %d", ErrStepOutOfRange, target)
			}
			session.StepIndex = target
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAction, action)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Warn("Navigate: session=%s action=%s: %v", id, action, err)
		return nil, err
	}

	s.logger.Info("Navigate: session=%s action=%s step=%d", id, action, session.StepIndex)
	return session, nil
}

// SelectDate выбирает дату консультации. Недоступная дата (прошлое, дальше
// 30 дней, пятница или суббота) отклоняется и не меняет состояние — в том
// числе не запускает загрузку booked-set. Смена даты сбрасывает выбранное
// время, поднимает поколение запроса и обнуляет снимок booked-set.
func (s *Service) SelectDate(ctx context.Context, id uuid.UUID, date time.Time) (*domain.WizardSession, error) {
	now := s.timeProvider.Now()

	session, err := s.store.Update(ctx, id, func(session *domain.WizardSession) error {
		if !session.Booking.State.CanSelectDate() {
			return ErrBookingLocked
		}
		if err := validateBookingDate(date, now); err != nil {
			return err
		}

		d := date
		session.Booking.SelectedDate = &d
		session.Booking.SelectedTime = nil
		session.Booking.State = domain.BookingDateSelected
		session.Booking.FetchGen++
		session.Booking.BookedView = nil
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Warn("SelectDate: session=%s date=%s: %v", id, date.Format(domain.DateFormat), err)
		return nil, err
	}

	s.logger.Info("SelectDate: session=%s date=%s gen=%d",
		id, date.Format(domain.DateFormat), session.Booking.FetchGen)
	return session, nil
}

// SelectTime выбирает время консультации (метку времени брокера).
// Метка обязана присутствовать в каталоге визарда; если актуальный снимок
// booked-set уже помечает её занятой, выбор отклоняется сразу.
func (s *Service) SelectTime(ctx context.Context, id uuid.UUID, label string) (*domain.WizardSession, error) {
	session, err := s.store.Update(ctx, id, func(session *domain.WizardSession) error {
		if !session.Booking.State.CanSelectTime() {
			if session.Booking.SelectedDate == nil {
				return ErrDateNotSelected
			}
			return ErrBookingLocked
		}

		parsed, err := types.ParseTimeLabel(label)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTimeNotInCatalog, err)
		}

		catalog, err := domain.CatalogFor(session.Flow)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !catalog.Contains(parsed) {
			return fmt.Errorf("%w: %q", ErrTimeNotInCatalog, label)
		}

		// Лучшее из известного на данный момент: авторитетная проверка
		// всё равно выполняется при финальной отправке
		view := session.Booking.BookedView
		if view != nil && view.Gen == session.Booking.FetchGen && view.Contains(parsed.String()) {
			return ErrTimeUnavailable
		}

		session.Booking.SelectedTime = &parsed
		session.Booking.State = domain.BookingTimeSelected
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Warn("SelectTime: session=%s time=%q: %v", id, label, err)
		return nil, err
	}

	s.logger.Info("SelectTime: session=%s time=%s", id, label)
	return session, nil
}

// validateBookingDate проверяет, что дата входит в окно бронирования:
// от сегодня до +30 дней, воскресенье–четверг
func validateBookingDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if dateOnly.Before(nowOnly) {
		return ErrDateInPast
	}
	if dateOnly.After(nowOnly.AddDate(0, 0, domain.MaxAdvanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}
	if !domain.IsBookableWeekday(dateOnly.Weekday()) {
		return fmt.Errorf("%w: %s", ErrClosedWeekday, dateOnly.Weekday())
	}
	return nil
}
