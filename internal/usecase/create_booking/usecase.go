package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
	catalogRepo "github.com/sportbook/SB-BookingService/internal/infra/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	catalog      CatalogRepository
	store        BookingStore
	timeProvider TimeProvider
	logger       Logger

	// processingDelay искусственная задержка обработки (имитация платежного шлюза)
	processingDelay time.Duration

	// inFlight сессии с бронированием в обработке: защита от двойной отправки формы
	inFlightMu sync.Mutex
	inFlight   map[string]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogRepository,
	store BookingStore,
	processingDelay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:         catalog,
		store:           store,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		processingDelay: processingDelay,
		inFlight:        make(map[string]struct{}),
	}
}

// Execute выполняет use case создания бронирования.
//
// Любая ошибка терминальна для этой попытки: повторов и частичного
// восстановления нет, пользователь отправляет форму заново.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, facility=%s, date=%s, time=%s",
		req.SessionID, req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных и нормализация формы
	form, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Одно бронирование в обработке на сессию
	if !uc.beginInFlight(req.SessionID) {
		uc.logger.Warn("CreateBooking: booking already in progress for session=%s", req.SessionID)
		return nil, ErrBookingInProgress
	}
	defer uc.endInFlight(req.SessionID)

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем площадку
	facility, err := uc.catalog.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 5. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	dateKey := req.Date.Format(domain.DateFormat)
	if _, ok := facility.Availability[dateKey]; !ok {
		uc.logger.Warn("CreateBooking: date %s is outside the horizon for facility id=%s",
			dateKey, req.FacilityID)
		return nil, ErrDateOutsideHorizon
	}

	// 6. Проверяем выбор через машину состояний выбора слота:
	// время валидно только внутри набора слотов выбранной даты и только для свободного слота
	selection := domain.NewSelection(facility.Availability, dateKey)
	if !selection.SelectTime(req.StartTime) || !selection.CanSubmit() {
		uc.logger.Warn("CreateBooking: slot %s %s not available for facility id=%s",
			dateKey, req.StartTime, req.FacilityID)
		return nil, ErrSlotNotAvailable
	}

	// 7. Искусственная задержка обработки.
	// Отмена запроса во время задержки не оставляет побочных эффектов -
	// слот еще не занят и запись не создана.
	if uc.processingDelay > 0 {
		select {
		case <-ctx.Done():
			uc.logger.Info("CreateBooking: cancelled during processing: session=%s", req.SessionID)
			return nil, ctx.Err()
		case <-time.After(uc.processingDelay):
		}
	}

	// 8. Атомарно занимаем слот в календаре.
	// Здесь отсекается гонка двух сессий за один слот.
	if err := uc.catalog.MarkBooked(ctx, req.FacilityID, dateKey, req.StartTime); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrSlotAlreadyBooked), errors.Is(err, catalogRepo.ErrSlotNotFound):
			uc.logger.Warn("CreateBooking: slot %s %s already taken for facility id=%s",
				dateKey, req.StartTime, req.FacilityID)
			return nil, ErrSlotNotAvailable
		default:
			uc.logger.Error("CreateBooking: failed to mark slot booked: %v", err)
			return nil, fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}
	}

	// 9. Строим запись бронирования со снимком данных площадки
	createdAt := uc.timeProvider.Now()
	booking := &domain.Booking{
		ID:            domain.NewBookingID(createdAt),
		FacilityID:    facility.ID,
		FacilityName:  facility.Name,
		Date:          dateKey,
		StartTime:     req.StartTime,
		DurationHours: domain.BookingDurationHours,
		Customer:      *form,
		// Сумма равна цене часа: длительность фиксирована и не умножает цену
		TotalAmount:   facility.PricePerHour,
		Status:        domain.StatusConfirmed,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		CreatedAt:     createdAt,
	}

	// 10. Сохраняем как единственную запись сессии (перезаписывая предыдущую)
	if err := uc.store.Put(ctx, req.SessionID, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to store booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to store booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for session=%s",
		booking.ID, req.SessionID)

	return &Response{
		ID:              booking.ID,
		FacilityID:      booking.FacilityID,
		FacilityName:    booking.FacilityName,
		Date:            booking.Date,
		StartTime:       booking.StartTime,
		DurationHours:   booking.DurationHours,
		Name:            booking.Customer.Name,
		Email:           booking.Customer.Email,
		Phone:           booking.Customer.Phone,
		PlayerCount:     booking.Customer.PlayerCount,
		SpecialRequests: booking.Customer.SpecialRequests,
		TotalAmount:     booking.TotalAmount,
		Status:          string(booking.Status),
		PaymentMethod:   string(booking.PaymentMethod),
		CreatedAt:       booking.CreatedAt,
	}, nil
}

// beginInFlight помечает сессию как обрабатывающую бронирование.
// Возвращает false, если обработка уже идет.
func (uc *UseCase) beginInFlight(sessionID string) bool {
	uc.inFlightMu.Lock()
	defer uc.inFlightMu.Unlock()

	if _, busy := uc.inFlight[sessionID]; busy {
		return false
	}
	uc.inFlight[sessionID] = struct{}{}
	return true
}

func (uc *UseCase) endInFlight(sessionID string) {
	uc.inFlightMu.Lock()
	defer uc.inFlightMu.Unlock()
	delete(uc.inFlight, sessionID)
}
