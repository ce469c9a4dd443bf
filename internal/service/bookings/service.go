package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportbook/SB-BookingService/internal/infra/sessionstore"
	"github.com/sportbook/SB-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований сессии
type Service struct {
	store  BookingStore
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetCurrent возвращает последнее бронирование сессии.
// Запись только для чтения: изменения, отмены и возвраты не поддерживаются.
func (s *Service) GetCurrent(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	s.logger.Info("GetCurrent: fetching booking for session=%s", sessionID)

	booking, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrBookingNotFound) {
			s.logger.Warn("GetCurrent: no booking found for session=%s", sessionID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetCurrent: store error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: GetCurrent - store error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCurrent: successfully fetched booking id=%s for session=%s", booking.ID, sessionID)
	return models.FromDomainBooking(booking), nil
}
