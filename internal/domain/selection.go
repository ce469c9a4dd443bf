package domain

import "github.com/sportbook/SB-BookingService/pkg/types"

// Selection машина состояний выбора слота на странице площадки.
// Два состояния: выбранная дата (всегда задана) и выбранное время (может отсутствовать).
//
// Инвариант: выбранное время валидно только если оно принадлежит набору слотов
// выбранной даты и этот слот свободен. Смена даты всегда сбрасывает время.
type Selection struct {
	availability Availability
	date         string
	slotTime     types.TimeString // "" = время не выбрано
}

// NewSelection создает выбор с начальной датой и без выбранного времени
func NewSelection(availability Availability, date string) *Selection {
	return &Selection{
		availability: availability,
		date:         date,
	}
}

// Date возвращает выбранную дату
func (s *Selection) Date() string {
	return s.date
}

// Time возвращает выбранное время ("" если время не выбрано)
func (s *Selection) Time() types.TimeString {
	return s.slotTime
}

// SelectDate выбирает новую дату и сбрасывает выбранное время
func (s *Selection) SelectDate(date string) {
	s.date = date
	s.slotTime = ""
}

// SelectTime выбирает время внутри текущей даты.
// Возвращает false (no-op), если слота нет в наборе выбранной даты или он занят.
func (s *Selection) SelectTime(t types.TimeString) bool {
	daySlots, ok := s.availability[s.date]
	if !ok {
		return false
	}

	state, ok := daySlots[t]
	if !ok || state != SlotAvailable {
		return false
	}

	s.slotTime = t
	return true
}

// CanSubmit возвращает true, когда выбор полон и можно открывать бронирование
func (s *Selection) CanSubmit() bool {
	return !s.slotTime.IsZero()
}
