package get_current_booking

import (
	"context"

	"github.com/sportbook/SB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCurrent(ctx context.Context, sessionID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
