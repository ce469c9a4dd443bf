package domain

// Availability grid constants
const (
	// HorizonDays глубина календаря доступности (сегодня включительно)
	HorizonDays = 7

	// OpenHour час первого слота дня
	OpenHour = 8

	// CloseHour час последнего слота дня (включительно)
	CloseHour = 22

	// SlotsPerDay количество часовых слотов в дне: 08:00..22:00
	SlotsPerDay = CloseHour - OpenHour + 1

	// DefaultBookedRate вероятность, что сгенерированный слот изначально занят
	DefaultBookedRate = 0.3
)

// Booking constants
const (
	// BookingDurationHours длительность любого бронирования - ровно один час
	BookingDurationHours = 1

	DefaultPlayerCount = 1
	MinPlayerCount     = 1
	MaxPlayerCount     = 50

	MaxSpecialRequestsLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
