package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamal-freight/SFB-LeadService/internal/brokertime"
	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/internal/infra/sessionstore"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeClient управляемый клиент scheduling backend
type fakeClient struct {
	booked  []domain.BookedSlot
	err     error
	calls   int
	onFetch func() // вызывается внутри запроса, имитирует гонку
}

func (c *fakeClient) GetSubmissionsByDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error) {
	c.calls++
	if c.onFetch != nil {
		c.onFetch()
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.booked, nil
}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // понедельник

func newSessionWithDate(t *testing.T, store *sessionstore.Store, flow domain.FlowKind) *domain.WizardSession {
	t.Helper()
	session, err := domain.NewWizardSession(flow, time.Now())
	require.NoError(t, err)

	d := testDate
	session.Booking.SelectedDate = &d
	session.Booking.State = domain.BookingDateSelected
	session.Booking.FetchGen = 1
	require.NoError(t, store.Create(context.Background(), session))
	return session
}

func newTestUseCase(store *sessionstore.Store, client *fakeClient) *UseCase {
	return NewUseCase(store, client, brokertime.NewConverter(3), nil, nopLogger{})
}

func findGroup(t *testing.T, groups []SlotGroup, name domain.SlotGroup) SlotGroup {
	t.Helper()
	for _, g := range groups {
		if g.Group == name {
			return g
		}
	}
	t.Fatalf("group %q not found", name)
	return SlotGroup{}
}

func TestExecute_MarksBookedSlots(t *testing.T) {
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{booked: []domain.BookedSlot{
		{SelectedTime: "10:30 AM", UserName: "Someone"},
	}}
	session := newSessionWithDate(t, store, domain.FlowFreight)
	uc := newTestUseCase(store, client)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: session.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.FlowFreight, resp.Flow)
	assert.True(t, resp.Date.Equal(testDate))

	available := map[string]bool{}
	for _, g := range resp.Groups {
		for _, s := range g.Slots {
			available[s.Time] = s.Available
		}
	}
	assert.Len(t, available, 6)
	assert.False(t, available["10:30 AM"])
	for _, label := range []string{"11:30 AM", "12:30 PM", "5:00 PM", "6:00 PM", "7:00 PM"} {
		assert.True(t, available[label], "label %s", label)
	}
}

func TestExecute_UnknownBookedLabelIgnored(t *testing.T) {
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{booked: []domain.BookedSlot{
		{SelectedTime: "3:00 AM"}, // нет в каталоге
	}}
	session := newSessionWithDate(t, store, domain.FlowFreight)
	uc := newTestUseCase(store, client)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: session.ID})
	require.NoError(t, err)

	for _, g := range resp.Groups {
		for _, s := range g.Slots {
			assert.True(t, s.Available)
		}
	}
}

func TestExecute_DaypartGroupingByViewerClock(t *testing.T) {
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{}
	session := newSessionWithDate(t, store, domain.FlowFreight)
	uc := newTestUseCase(store, client)

	// UTC: брокерские 10:30/11:30/12:30 уходят в утро (7:30/8:30/9:30),
	// вечерняя тройка остается вечером (2:00/3:00/4:00 PM)
	resp, err := uc.Execute(context.Background(), &Request{SessionID: session.ID})
	require.NoError(t, err)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, domain.GroupMorning, resp.Groups[0].Group)
	assert.Equal(t, domain.GroupEvening, resp.Groups[1].Group)

	morning := resp.Groups[0]
	require.Len(t, morning.Slots, 3)
	assert.Equal(t, "7:30 AM", morning.Slots[0].LocalTime)
	assert.Equal(t, "10:30 AM", morning.Slots[0].Time)
	assert.Equal(t, "9:30 AM", morning.Slots[2].LocalTime)

	evening := resp.Groups[1]
	require.Len(t, evening.Slots, 3)
	assert.Equal(t, "2:00 PM", evening.Slots[0].LocalTime)
	assert.Equal(t, "4:00 PM", evening.Slots[2].LocalTime)
}

func TestExecute_DaypartGroupsFollowLocalTime(t *testing.T) {
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{}
	session := newSessionWithDate(t, store, domain.FlowFreight)
	uc := newTestUseCase(store, client)

	// Нью-Йорк (UTC-4 на эту дату): брокерские 5:00/6:00 PM становятся
	// местным утром, вечером остается только 7:00 PM → 12:00 PM
	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		ViewerTZ:  "America/New_York",
	})
	require.NoError(t, err)

	morning := findGroup(t, resp.Groups, domain.GroupMorning)
	require.Len(t, morning.Slots, 5)
	assert.Equal(t, "3:30 AM", morning.Slots[0].LocalTime)
	assert.Equal(t, "11:00 AM", morning.Slots[4].LocalTime)

	evening := findGroup(t, resp.Groups, domain.GroupEvening)
	require.Len(t, evening.Slots, 1)
	assert.Equal(t, "7:00 PM", evening.Slots[0].Time)
	assert.Equal(t, "12:00 PM", evening.Slots[0].LocalTime)
}

func TestExecute_RegionCatalogKeepsOrder(t *testing.T) {
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{booked: []domain.BookedSlot{
		{SelectedTime: "5:00 PM"},
	}}
	session := newSessionWithDate(t, store, domain.FlowFreightIntl)
	uc := newTestUseCase(store, client)

	// Группы региона не зависят от зоны посетителя
	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: session.ID,
		ViewerTZ:  "America/New_York",
	})
	require.NoError(t, err)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, domain.GroupGCCEurope, resp.Groups[0].Group)
	assert.Equal(t, domain.GroupUSACanada, resp.Groups[1].Group)

	gcc := resp.Groups[0]
	require.Len(t, gcc.Slots, 3)
	assert.Equal(t, "10:00 AM", gcc.Slots[0].Time)

	usa := resp.Groups[1]
	require.Len(t, usa.Slots, 4)
	assert.Equal(t, "5:00 PM", usa.Slots[0].Time)
	assert.False(t, usa.Slots[0].Available)
	assert.True(t, usa.Slots[1].Available)
}

func TestExecute_CommitsBookedView(t *testing.T) {
	ctx := context.Background()
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{booked: []domain.BookedSlot{{SelectedTime: "7:00 PM"}}}
	session := newSessionWithDate(t, store, domain.FlowFreight)
	uc := newTestUseCase(store, client)

	_, err := uc.Execute(ctx, &Request{SessionID: session.ID})
	require.NoError(t, err)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Booking.BookedView)
	assert.Equal(t, session.Booking.FetchGen, got.Booking.BookedView.Gen)
	assert.Equal(t, []string{"7:00 PM"}, got.Booking.BookedView.Labels)
}

func TestExecute_StaleGenerationDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	store := sessionstore.NewStore(time.Hour)
	session := newSessionWithDate(t, store, domain.FlowFreight)

	// Пока ответ в пути, посетитель меняет дату: поколение растет,
	// и пришедший снимок уже устарел
	client := &fakeClient{
		booked: []domain.BookedSlot{{SelectedTime: "7:00 PM"}},
		onFetch: func() {
			_, err := store.Update(ctx, session.ID, func(s *domain.WizardSession) error {
				s.Booking.FetchGen++
				s.Booking.BookedView = nil
				return nil
			})
			require.NoError(t, err)
		},
	}
	uc := newTestUseCase(store, client)

	// Ответ все равно отдается: он ключуется запрошенной датой
	resp, err := uc.Execute(ctx, &Request{SessionID: session.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Groups)

	// Но устаревший снимок не зафиксирован в сессии
	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Booking.BookedView)
}

func TestExecute_FetchErrorIsRetryable(t *testing.T) {
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{err: errors.New("connection refused")}
	session := newSessionWithDate(t, store, domain.FlowFreight)
	uc := newTestUseCase(store, client)

	_, err := uc.Execute(context.Background(), &Request{SessionID: session.ID})
	assert.ErrorIs(t, err, ErrSlotsFetch)
}

func TestExecute_InputErrors(t *testing.T) {
	store := sessionstore.NewStore(time.Hour)
	client := &fakeClient{}
	uc := newTestUseCase(store, client)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SessionID: uuid.New()})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Сессия есть, но дата еще не выбрана
	session, cerr := domain.NewWizardSession(domain.FlowFreight, time.Now())
	require.NoError(t, cerr)
	require.NoError(t, store.Create(context.Background(), session))

	_, err = uc.Execute(context.Background(), &Request{SessionID: session.ID})
	assert.ErrorIs(t, err, ErrDateNotSelected)
	assert.Zero(t, client.calls)

	// Неизвестная зона отклоняется до похода в backend
	booked := newSessionWithDate(t, store, domain.FlowFreight)
	_, err = uc.Execute(context.Background(), &Request{SessionID: booked.ID, ViewerTZ: "Mars/Olympus"})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
	assert.Zero(t, client.calls)
}
