package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportbook/SB-BookingService/internal/domain"
	catalogRepo "github.com/sportbook/SB-BookingService/internal/infra/catalog"
)

// UseCase use case для получения слотов площадки на дату
type UseCase struct {
	catalog      CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%s, date=%s",
		req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	facility, err := uc.catalog.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Валидация даты относительно текущего дня
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Достаем слоты дня из календаря
	// Календарь покрывает ровно HorizonDays дат, более дальние даты - за горизонтом
	dateKey := req.Date.Format(domain.DateFormat)
	daySlots, ok := facility.Availability[dateKey]
	if !ok {
		uc.logger.Warn("GetAvailableSlots: date %s is outside the horizon for facility id=%s",
			dateKey, req.FacilityID)
		return nil, ErrDateOutsideHorizon
	}

	// 5. Собираем слоты в порядке возрастания времени
	slots := make([]Slot, 0, len(daySlots))
	for _, t := range daySlots.SortedTimes() {
		slots = append(slots, Slot{
			StartTime:       t,
			DurationMinutes: domain.BookingDurationHours * 60,
			Status:          daySlots[t],
		})
	}

	uc.logger.Info("GetAvailableSlots: returned %d slots for facility=%s, date=%s",
		len(slots), req.FacilityID, dateKey)

	return &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
