package list_facilities

import (
	"context"

	"github.com/sportbook/SB-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, req *models.ListFacilitiesRequest) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
