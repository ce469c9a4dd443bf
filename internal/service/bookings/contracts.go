package bookings

import (
	"context"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

// BookingStore интерфейс хранилища последнего бронирования сессии
type BookingStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
