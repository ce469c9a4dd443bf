package sessionstore

import "errors"

var (
	// ErrBookingNotFound возвращается, когда для сессии нет сохраненного бронирования
	ErrBookingNotFound = errors.New("sessionstore: booking not found")

	// ErrEncode возвращается при ошибке сериализации записи бронирования
	ErrEncode = errors.New("sessionstore: failed to encode booking")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("sessionstore: storage error")
)
