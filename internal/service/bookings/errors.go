package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда у сессии нет сохраненного бронирования
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
