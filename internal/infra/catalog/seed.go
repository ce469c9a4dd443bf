package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

// seedFacility JSON-модель площадки в seed-файле
type seedFacility struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sport    string `json:"sport"`
	Location struct {
		City         string `json:"city"`
		Neighborhood string `json:"neighborhood"`
		Address      string `json:"address"`
	} `json:"location"`
	Images       []string `json:"images"`
	PricePerHour float64  `json:"pricePerHour"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Description  string   `json:"description"`
	Rules        []string `json:"rules"`
	Amenities    []string `json:"amenities"`
	Contact      struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"contact"`
}

// loadSeed читает и разбирает seed-файл каталога
func loadSeed(path string) ([]*domain.Facility, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrSeedFile, path, err)
	}

	var seeds []seedFacility
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrSeedFile, path, err)
	}

	facilities := make([]*domain.Facility, 0, len(seeds))
	for _, s := range seeds {
		facilities = append(facilities, &domain.Facility{
			ID:    s.ID,
			Name:  s.Name,
			Sport: s.Sport,
			Location: domain.Location{
				City:         s.Location.City,
				Neighborhood: s.Location.Neighborhood,
				Address:      s.Location.Address,
			},
			Images:       s.Images,
			PricePerHour: s.PricePerHour,
			Rating:       s.Rating,
			ReviewCount:  s.ReviewCount,
			Description:  s.Description,
			Rules:        s.Rules,
			Amenities:    s.Amenities,
			Contact: domain.Contact{
				Email: s.Contact.Email,
				Phone: s.Contact.Phone,
			},
		})
	}

	return facilities, nil
}
