package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

// MemoryStore in-memory хранилище последнего бронирования сессии.
//
// Хранит ровно одну запись на сессию: повторная запись перезаписывает
// предыдущую, запись исчезает по истечении TTL (аналог времени жизни сессии).
// Используется по умолчанию и в тестах; для нескольких инстансов сервиса
// вместо него включается Redis-хранилище.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	booking   domain.Booking
	expiresAt time.Time
}

// NewMemoryStore создает хранилище и запускает фоновую очистку истекших записей.
// Очистка останавливается закрытием stopCh.
func NewMemoryStore(ttl time.Duration, stopCh <-chan struct{}) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}

	go s.janitor(stopCh)

	return s
}

// Put сохраняет бронирование как единственную запись сессии, перезаписывая предыдущую
func (s *MemoryStore) Put(ctx context.Context, sessionID string, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		booking:   *booking,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get возвращает последнее бронирование сессии
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrBookingNotFound
	}

	booking := entry.booking
	return &booking, nil
}

// janitor периодически удаляет истекшие записи
func (s *MemoryStore) janitor(stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for sessionID, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, sessionID)
				}
			}
			s.mu.Unlock()
		}
	}
}
