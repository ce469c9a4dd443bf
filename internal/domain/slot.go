package domain

import (
	"sort"

	"github.com/sportbook/SB-BookingService/pkg/types"
)

// SlotState represents the state of a single bookable hour slot
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
)

// DaySlots слоты одного календарного дня: метка времени "HH:00" -> состояние
type DaySlots map[types.TimeString]SlotState

// Availability календарь доступности площадки: дата "YYYY-MM-DD" -> слоты дня
type Availability map[string]DaySlots

// SortedTimes возвращает метки времени дня в возрастающем порядке
func (d DaySlots) SortedTimes() []types.TimeString {
	times := make([]types.TimeString, 0, len(d))
	for t := range d {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })
	return times
}

// Dates возвращает даты календаря в возрастающем порядке
func (a Availability) Dates() []string {
	dates := make([]string, 0, len(a))
	for date := range a {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Clone возвращает глубокую копию календаря
// Репозиторий отдает наружу только копии, чтобы читатели не видели последующих мутаций
func (a Availability) Clone() Availability {
	cloned := make(Availability, len(a))
	for date, slots := range a {
		daySlots := make(DaySlots, len(slots))
		for t, state := range slots {
			daySlots[t] = state
		}
		cloned[date] = daySlots
	}
	return cloned
}
