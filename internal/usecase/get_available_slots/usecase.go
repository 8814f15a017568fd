package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/shamal-freight/SFB-LeadService/internal/brokertime"
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/internal/infra/sessionstore"
)

// UseCase use case получения доступных слотов консультации.
// Слоты не хранятся: каждый вызов заново загружает booked-set выбранной
// даты и пересчитывает каталог. Кэша между датами нет намеренно —
// устаревшие данные не должны пережить смену даты.
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	viewerLoc, err := brokertime.ViewerLocation(req.ViewerTZ)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid timezone %q", req.ViewerTZ)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, req.ViewerTZ)
	}

	// 2. Читаем сессию: дату и поколение запроса
	session, err := uc.store.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}
	if session.Booking.SelectedDate == nil {
		uc.logger.Warn("GetAvailableSlots: session=%s has no selected date", req.SessionID)
		return nil, ErrDateNotSelected
	}

	date := *session.Booking.SelectedDate
	gen := session.Booking.FetchGen

	catalog, err := domain.CatalogFor(session.Flow)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Загружаем booked-set на выбранную дату
	booked, err := uc.client.GetSubmissionsByDate(ctx, date)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.IncSlotFetchError()
		}
		uc.logger.Error("GetAvailableSlots: session=%s date=%s fetch failed: %v",
			req.SessionID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrSlotsFetch, err)
	}

	// 4. Фиксируем снимок в сессии. Устаревшее поколение (дата сменилась,
	// пока шёл запрос) не затирает актуальный вид — ответ при этом всё
	// равно отдается: он ключуется датой, на которую был запрошен.
	view := &domain.BookedSetView{
		Date:      date,
		Gen:       gen,
		Labels:    bookedLabels(booked),
		FetchedAt: uc.timeProvider.Now(),
	}
	if err := uc.store.CommitBookedView(ctx, req.SessionID, view); err != nil {
		if errors.Is(err, sessionstore.ErrStaleGeneration) {
			uc.logger.Info("GetAvailableSlots: session=%s stale fetch discarded (gen=%d)", req.SessionID, gen)
		} else if !errors.Is(err, sessionstore.ErrSessionNotFound) {
			uc.logger.Error("GetAvailableSlots: session=%s commit failed: %v", req.SessionID, err)
		}
	}

	// 5. Вычисляем и группируем слоты
	groups := buildSlotGroups(catalog, view, date, viewerLoc, uc.converter)

	uc.logger.Info("GetAvailableSlots: session=%s date=%s booked=%d groups=%d",
		req.SessionID, date.Format(domain.DateFormat), len(booked), len(groups))

	return &Response{
		Date:     date,
		Flow:     session.Flow,
		ViewerTZ: req.ViewerTZ,
		Groups:   groups,
	}, nil
}
