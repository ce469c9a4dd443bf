package get_available_slots

import (
	"context"
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

// CatalogRepository интерфейс каталога площадок
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
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
