package create_booking

import (
	"time"

	"github.com/sportbook/SB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SessionID  string           // ID сессии (из заголовка X-Session-ID)
	FacilityID string           // ID площадки
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота (например, "09:00")

	// Контактная форма
	Name            string  // Обязательное поле
	Email           string  // Обязательное поле
	Phone           string  // Обязательное поле
	PlayerCount     int     // 0 = значение по умолчанию (1), иначе [1..50]
	SpecialRequests *string // Опциональный свободный текст
	PaymentMethod   string  // mpesa | card, пустая строка = mpesa
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string           // Идентификатор бронирования (BKxxxxxx)
	FacilityID    string           // ID площадки
	FacilityName  string           // Название площадки (снимок на момент бронирования)
	Date          string           // Дата бронирования "YYYY-MM-DD"
	StartTime     types.TimeString // Время начала
	DurationHours int              // Длительность в часах (всегда 1)

	// Контактные данные
	Name            string
	Email           string
	Phone           string
	PlayerCount     int
	SpecialRequests *string

	TotalAmount   float64   // Итоговая сумма (равна цене часа площадки)
	Status        string    // Статус бронирования (confirmed)
	PaymentMethod string    // Способ оплаты
	CreatedAt     time.Time // Время создания
}
