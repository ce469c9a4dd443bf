package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

// Repository in-memory каталог площадок.
//
// Список площадок загружается из seed-файла один раз при старте процесса и
// после этого не меняется. Единственная мутация - пометка слота занятым после
// успешного бронирования, поэтому доступ к календарям защищен RWMutex, а
// наружу отдаются только копии.
type Repository struct {
	mu         sync.RWMutex
	facilities []*domain.Facility
	byID       map[string]*domain.Facility
}

// NewRepository загружает каталог из seed-файла и генерирует календарь
// доступности каждой площадки начиная с today
func NewRepository(seedPath string, gen *AvailabilityGenerator, today time.Time) (*Repository, error) {
	facilities, err := loadSeed(seedPath)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Facility, len(facilities))
	for _, f := range facilities {
		// Календарь генерируется независимо для каждой площадки
		f.Availability = gen.Generate(today)
		byID[f.ID] = f
	}

	return &Repository{
		facilities: facilities,
		byID:       byID,
	}, nil
}

// List возвращает все площадки каталога в порядке загрузки
func (r *Repository) List(ctx context.Context) ([]*domain.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Facility, 0, len(r.facilities))
	for _, f := range r.facilities {
		result = append(result, r.snapshot(f))
	}
	return result, nil
}

// GetByID возвращает площадку по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return nil, ErrFacilityNotFound
	}
	return r.snapshot(f), nil
}

// MarkBooked атомарно занимает слот. Возвращает ErrSlotAlreadyBooked, если слот
// уже занят - это финальная защита от двойного бронирования одного слота.
func (r *Repository) MarkBooked(ctx context.Context, facilityID, date string, t types.TimeString) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.byID[facilityID]
	if !ok {
		return ErrFacilityNotFound
	}

	daySlots, ok := f.Availability[date]
	if !ok {
		return ErrSlotNotFound
	}

	state, ok := daySlots[t]
	if !ok {
		return ErrSlotNotFound
	}
	if state == domain.SlotBooked {
		return ErrSlotAlreadyBooked
	}

	daySlots[t] = domain.SlotBooked
	return nil
}

// snapshot возвращает копию площадки с копией календаря.
// Вызывается под блокировкой.
func (r *Repository) snapshot(f *domain.Facility) *domain.Facility {
	copied := *f
	copied.Availability = f.Availability.Clone()
	return &copied
}
