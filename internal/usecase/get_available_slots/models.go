package get_available_slots

import (
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

// Request модель запроса на получение слотов площадки на дату
type Request struct {
	FacilityID string    // ID площадки
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	FacilityID string    // ID площадки
	Date       time.Time // Дата, на которую запрашивались слоты
	Slots      []Slot    // Все слоты дня в порядке возрастания времени
}

// Slot модель часового слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах (всегда 60)
	Status          domain.SlotState // available | booked
}
