package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

func newTestSession(t *testing.T, now time.Time) *domain.WizardSession {
	t.Helper()
	session, err := domain.NewWizardSession(domain.FlowFreight, now)
	require.NoError(t, err)
	return session
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Hour)
	session := newTestSession(t, time.Now())

	require.NoError(t, store.Create(ctx, session))
	assert.ErrorIs(t, store.Create(ctx, session), ErrSessionExists)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, 1, store.Count())
}

func TestStore_GetExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	store := NewStore(time.Hour)
	store.now = func() time.Time { return now }

	session := newTestSession(t, now)
	require.NoError(t, store.Create(ctx, session))

	// В пределах TTL сессия живая
	now = now.Add(59 * time.Minute)
	_, err := store.Get(ctx, session.ID)
	require.NoError(t, err)

	// Get продлевает TTL не сам по себе — только Update; ждем за горизонт
	now = now.Add(2 * time.Hour)
	_, err = store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Count())
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	store := NewStore(time.Hour)
	store.now = func() time.Time { return now }

	session := newTestSession(t, now)
	require.NoError(t, store.Create(ctx, session))

	now = now.Add(10 * time.Minute)
	updated, err := store.Update(ctx, session.ID, func(s *domain.WizardSession) error {
		s.StepIndex = 2
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.StepIndex)
	assert.Equal(t, now, updated.UpdatedAt)

	// Ошибка мутации откатывает всё: частичные изменения не фиксируются
	failErr := assert.AnError
	_, err = store.Update(ctx, session.ID, func(s *domain.WizardSession) error {
		s.StepIndex = 5
		require.NoError(t, s.Answers.SetField(domain.StepService, "shippingType", "domestic"))
		return failErr
	})
	assert.ErrorIs(t, err, failErr)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.StepIndex)
	assert.Empty(t, got.Answers.Fields())
	assert.Equal(t, now, got.UpdatedAt)

	_, err = store.Update(ctx, uuid.New(), func(s *domain.WizardSession) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_ReturnsIndependentCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Hour)

	session := newTestSession(t, time.Now())
	require.NoError(t, store.Create(ctx, session))

	// Мутация указателя, переданного в Create, не видна хранилищу
	session.StepIndex = 6
	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.StepIndex)

	// Мутация копии из Get не видна хранилищу
	got.StepIndex = 3
	require.NoError(t, got.Answers.SetField(domain.StepService, "shippingType", "domestic"))
	again, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.StepIndex)
	assert.Empty(t, again.Answers.Fields())

	// Возврат Update тоже копия
	updated, err := store.Update(ctx, session.ID, func(s *domain.WizardSession) error {
		s.StepIndex = 1
		return nil
	})
	require.NoError(t, err)
	updated.StepIndex = 9
	final, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, final.StepIndex)
}

func TestStore_CommitBookedView(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Hour)

	session := newTestSession(t, time.Now())
	session.Booking.FetchGen = 2
	require.NoError(t, store.Create(ctx, session))

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Снимок устаревшего поколения отбрасывается
	stale := &domain.BookedSetView{Date: date, Gen: 1, Labels: []string{"7:00 PM"}}
	assert.ErrorIs(t, store.CommitBookedView(ctx, session.ID, stale), ErrStaleGeneration)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Booking.BookedView)

	// Актуальное поколение фиксируется
	fresh := &domain.BookedSetView{Date: date, Gen: 2, Labels: []string{"7:00 PM"}}
	require.NoError(t, store.CommitBookedView(ctx, session.ID, fresh))

	got, err = store.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Booking.BookedView)
	assert.Equal(t, []string{"7:00 PM"}, got.Booking.BookedView.Labels)

	// Снимок копируется при фиксации: указатель вызывающего не делится
	fresh.Labels[0] = "6:00 PM"
	got, err = store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"7:00 PM"}, got.Booking.BookedView.Labels)
}

func TestStore_Cleanup(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	store := NewStore(time.Hour)
	store.now = func() time.Time { return now }

	old := newTestSession(t, now)
	require.NoError(t, store.Create(ctx, old))

	now = now.Add(2 * time.Hour)
	live := newTestSession(t, now)
	require.NoError(t, store.Create(ctx, live))

	removed := store.Cleanup()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Count())

	_, err := store.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(ctx, live.ID)
	assert.NoError(t, err)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Hour)

	session := newTestSession(t, time.Now())
	require.NoError(t, store.Create(ctx, session))

	store.Delete(ctx, session.ID)
	_, err := store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
