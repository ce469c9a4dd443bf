package models

import "github.com/sportbook/SB-BookingService/internal/domain"

// Request модели

// ListFacilitiesRequest запрос на получение списка площадок
type ListFacilitiesRequest struct {
	// Search подстрока для поиска по названию и району (без учета регистра)
	Search string

	// Sport фильтр по виду спорта; пустая строка или "All" = без фильтра
	Sport string
}

// Response модели

// LocationResponse адрес площадки
type LocationResponse struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
}

// ContactResponse контакты площадки
type ContactResponse struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// FacilitySummary краткая карточка площадки для списка
type FacilitySummary struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Sport        string           `json:"sport"`
	Location     LocationResponse `json:"location"`
	Images       []string         `json:"images"`
	PricePerHour float64          `json:"pricePerHour"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"reviewCount"`
	Amenities    []string         `json:"amenities"`
}

// FacilityListResponse ответ со списком площадок
type FacilityListResponse struct {
	Facilities []FacilitySummary `json:"facilities"`
	Total      int               `json:"total"`
}

// FacilityResponse полная карточка площадки
type FacilityResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Sport        string           `json:"sport"`
	Location     LocationResponse `json:"location"`
	Images       []string         `json:"images"`
	PricePerHour float64          `json:"pricePerHour"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"reviewCount"`
	Description  string           `json:"description"`
	Rules        []string         `json:"rules"`
	Amenities    []string         `json:"amenities"`
	Contact      ContactResponse  `json:"contact"`

	// Availability календарь доступности: дата -> время -> available|booked
	Availability map[string]map[string]string `json:"availability"`
}

// FromDomainFacilitySummary конвертирует domain модель в краткую карточку
func FromDomainFacilitySummary(f *domain.Facility) FacilitySummary {
	return FacilitySummary{
		ID:           f.ID,
		Name:         f.Name,
		Sport:        f.Sport,
		Location:     fromDomainLocation(f.Location),
		Images:       f.Images,
		PricePerHour: f.PricePerHour,
		Rating:       f.Rating,
		ReviewCount:  f.ReviewCount,
		Amenities:    f.Amenities,
	}
}

// FromDomainFacilityList конвертирует список domain моделей в ответ
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	summaries := make([]FacilitySummary, 0, len(facilities))
	for _, f := range facilities {
		summaries = append(summaries, FromDomainFacilitySummary(f))
	}
	return &FacilityListResponse{
		Facilities: summaries,
		Total:      len(summaries),
	}
}

// FromDomainFacility конвертирует domain модель в полную карточку
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:           f.ID,
		Name:         f.Name,
		Sport:        f.Sport,
		Location:     fromDomainLocation(f.Location),
		Images:       f.Images,
		PricePerHour: f.PricePerHour,
		Rating:       f.Rating,
		ReviewCount:  f.ReviewCount,
		Description:  f.Description,
		Rules:        f.Rules,
		Amenities:    f.Amenities,
		Contact: ContactResponse{
			Email: f.Contact.Email,
			Phone: f.Contact.Phone,
		},
		Availability: fromDomainAvailability(f.Availability),
	}
}

func fromDomainLocation(l domain.Location) LocationResponse {
	return LocationResponse{
		City:         l.City,
		Neighborhood: l.Neighborhood,
		Address:      l.Address,
	}
}

func fromDomainAvailability(a domain.Availability) map[string]map[string]string {
	result := make(map[string]map[string]string, len(a))
	for date, slots := range a {
		day := make(map[string]string, len(slots))
		for t, state := range slots {
			day[t.String()] = string(state)
		}
		result[date] = day
	}
	return result
}
