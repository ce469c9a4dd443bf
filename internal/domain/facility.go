package domain

import "strings"

// Location адрес площадки
type Location struct {
	City         string
	Neighborhood string
	Address      string
}

// Contact контакты площадки
type Contact struct {
	Email string
	Phone string
}

// Facility represents a bookable sports venue.
// Records are immutable for the lifetime of the process; the catalog owns them.
type Facility struct {
	ID           string
	Name         string
	Sport        string
	Location     Location
	Images       []string
	PricePerHour float64
	Rating       float64
	ReviewCount  int
	Description  string
	Rules        []string
	Amenities    []string
	Contact      Contact

	// Availability генерируется один раз при загрузке каталога
	Availability Availability
}

// MatchesSearch returns true if the query matches the facility name or
// neighborhood (case-insensitive substring, as on the catalog page)
func (f *Facility) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	return containsFold(f.Name, query) || containsFold(f.Location.Neighborhood, query)
}

// MatchesSport returns true if the facility matches the sport filter.
// Пустая строка и "All" означают отсутствие фильтра.
func (f *Facility) MatchesSport(sport string) bool {
	return sport == "" || sport == "All" || f.Sport == sport
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
