package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrMissingInformation возвращается, когда не заполнены обязательные поля формы
	// (имя, email, телефон)
	ErrMissingInformation = errors.New("create_booking: missing required contact information")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateOutsideHorizon возвращается, когда дата за пределами календаря доступности
	ErrDateOutsideHorizon = errors.New("create_booking: date is outside the availability horizon")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или отсутствует
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrBookingInProgress возвращается при попытке повторной отправки,
	// пока предыдущее бронирование этой сессии еще обрабатывается
	ErrBookingInProgress = errors.New("create_booking: booking already in progress for this session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
