package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

// AvailabilityGenerator генератор календаря доступности.
//
// Для каждой площадки строит ровно HorizonDays дат (сегодня включительно),
// в каждой дате ровно SlotsPerDay часовых слотов OpenHour..CloseHour.
// Каждый слот независимо помечается занятым с вероятностью bookedRate.
//
// Генератор детерминирован относительно зерна: одно и то же зерно дает один и
// тот же календарь, поэтому доступность стабильна между перезапусками процесса.
type AvailabilityGenerator struct {
	rnd        *rand.Rand
	bookedRate float64
}

// NewAvailabilityGenerator создает генератор.
// seed = 0 означает зерно от текущего времени (недетерминированный режим).
func NewAvailabilityGenerator(seed int64, bookedRate float64) *AvailabilityGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AvailabilityGenerator{
		rnd:        rand.New(rand.NewSource(seed)),
		bookedRate: bookedRate,
	}
}

// Generate строит календарь доступности начиная с today
func (g *AvailabilityGenerator) Generate(today time.Time) domain.Availability {
	availability := make(domain.Availability, domain.HorizonDays)

	for day := 0; day < domain.HorizonDays; day++ {
		date := today.AddDate(0, 0, day).Format(domain.DateFormat)

		daySlots := make(domain.DaySlots, domain.SlotsPerDay)
		for hour := domain.OpenHour; hour <= domain.CloseHour; hour++ {
			label := types.TimeString(fmt.Sprintf("%02d:00", hour))

			state := domain.SlotAvailable
			if g.rnd.Float64() < g.bookedRate {
				state = domain.SlotBooked
			}
			daySlots[label] = state
		}

		availability[date] = daySlots
	}

	return availability
}
