package create_booking

import (
	"context"
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

// CatalogRepository интерфейс каталога площадок
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)

	// MarkBooked атомарно занимает слот в календаре доступности
	MarkBooked(ctx context.Context, facilityID, date string, t types.TimeString) error
}

// BookingStore интерфейс хранилища последнего бронирования сессии
type BookingStore interface {
	Put(ctx context.Context, sessionID string, booking *domain.Booking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
