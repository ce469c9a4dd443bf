package domain

import (
	"fmt"
	"time"

	"github.com/sportbook/SB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCard  PaymentMethod = "card"
)

// IsValid возвращает true для известного способа оплаты
func (p PaymentMethod) IsValid() bool {
	return p == PaymentMpesa || p == PaymentCard
}

// CustomerInfo контактные данные из формы бронирования
type CustomerInfo struct {
	Name            string
	Email           string
	Phone           string
	PlayerCount     int
	SpecialRequests *string
}

// Booking represents a confirmed reservation for one facility, date and hour slot
type Booking struct {
	ID         string
	FacilityID string

	// Denormalized facility data for display after the session's catalog is gone
	FacilityName string

	Date          string // "YYYY-MM-DD"
	StartTime     types.TimeString
	DurationHours int
	Customer      CustomerInfo
	TotalAmount   float64
	Status        BookingStatus
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}

// NewBookingID синтезирует идентификатор бронирования из последних шести цифр
// текущего unix-времени в миллисекундах. Глобальная уникальность не гарантируется,
// коллизия внутри одной сессии практически невозможна.
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("BK%06d", now.UnixMilli()%1_000_000)
}
