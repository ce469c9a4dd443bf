package catalog

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена в каталоге
	ErrFacilityNotFound = errors.New("catalog.repository: facility not found")

	// ErrSlotNotFound возвращается, когда дата или время отсутствуют в календаре доступности
	ErrSlotNotFound = errors.New("catalog.repository: slot not found in availability calendar")

	// ErrSlotAlreadyBooked возвращается при попытке занять уже занятый слот
	ErrSlotAlreadyBooked = errors.New("catalog.repository: slot is already booked")

	// ErrSeedFile возвращается при ошибке чтения или разбора файла с данными площадок
	ErrSeedFile = errors.New("catalog.repository: failed to load seed file")
)
