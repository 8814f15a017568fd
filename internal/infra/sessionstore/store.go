package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// Store потокобезопасное in-memory хранилище сессий визарда.
// Состояние сессии живёт только в памяти процесса и выметается по TTL —
// персистентного слоя у визарда нет по условиям продукта.
//
// Наружу сессия никогда не отдаётся живым указателем: Get и Update
// возвращают глубокие копии, снятые под блокировкой. Вызывающий код может
// читать и сериализовать их без гонок с параллельными мутациями.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.WizardSession
	ttl      time.Duration

	now func() time.Time // подменяется в тестах
}

// NewStore создает хранилище сессий с указанным TTL
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*domain.WizardSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create сохраняет новую сессию
func (s *Store) Create(_ context.Context, session *domain.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return ErrSessionExists
	}
	s.sessions[session.ID] = session.Clone()
	return nil
}

// Get возвращает копию сессии по ID. Истекшие сессии удаляются лениво.
// Мутации — только через Update.
func (s *Store) Get(_ context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}
	return session.Clone(), nil
}

func (s *Store) getLocked(id uuid.UUID) (*domain.WizardSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(session) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) expired(session *domain.WizardSession) bool {
	return s.now().Sub(session.UpdatedAt) > s.ttl
}

// Update выполняет мутацию сессии под блокировкой записи. Мутация
// применяется к черновой копии и фиксируется целиком только при успехе fn:
// ошибка посреди fn не оставляет частично изменённую сессию.
// При успехе обновляет UpdatedAt (продлевая TTL).
func (s *Store) Update(_ context.Context, id uuid.UUID, fn func(*domain.WizardSession) error) (*domain.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}
	draft := session.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = s.now()
	s.sessions[id] = draft
	return draft.Clone(), nil
}

// CommitBookedView фиксирует снимок booked-set в сессии, только если его
// поколение всё ещё актуально. Поздний ответ для ранее выбранной даты
// отбрасывается с ErrStaleGeneration и не затирает актуальный вид.
func (s *Store) CommitBookedView(_ context.Context, id uuid.UUID, view *domain.BookedSetView) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(id)
	if err != nil {
		return err
	}
	if view.Gen != session.Booking.FetchGen {
		return ErrStaleGeneration
	}
	session.Booking.BookedView = view.Clone()
	session.UpdatedAt = s.now()
	return nil
}

// Delete удаляет сессию
func (s *Store) Delete(_ context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count возвращает количество живых сессий
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup удаляет истекшие сессии и возвращает количество удалённых.
// Вызывается фоновым janitor из main.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
