package catalog

import (
	"context"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

// CatalogRepository интерфейс каталога площадок
type CatalogRepository interface {
	List(ctx context.Context) ([]*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
