package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportbook/SB-BookingService/internal/domain"
	catalogRepo "github.com/sportbook/SB-BookingService/internal/infra/catalog"
	"github.com/sportbook/SB-BookingService/internal/service/catalog/models"
)

// Service сервис каталога площадок
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает площадки, отфильтрованные по поисковой строке и виду спорта.
// Поиск - подстрока названия или района без учета регистра; фильтр по спорту -
// точное совпадение, пустая строка и "All" пропускают все.
func (s *Service) List(ctx context.Context, req *models.ListFacilitiesRequest) (*models.FacilityListResponse, error) {
	s.logger.Info("List: fetching facilities, search=%q, sport=%q", req.Search, req.Sport)

	facilities, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filtered := make([]*domain.Facility, 0, len(facilities))
	for _, f := range facilities {
		if f.MatchesSearch(req.Search) && f.MatchesSport(req.Sport) {
			filtered = append(filtered, f)
		}
	}

	s.logger.Info("List: returning %d of %d facilities", len(filtered), len(facilities))
	return models.FromDomainFacilityList(filtered), nil
}

// GetByID возвращает полную карточку площадки с календарем доступности
func (s *Service) GetByID(ctx context.Context, id string) (*models.FacilityResponse, error) {
	s.logger.Info("GetByID: fetching facility id=%s", id)

	facility, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}
