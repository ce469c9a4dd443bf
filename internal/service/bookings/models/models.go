package models

import (
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

// CustomerInfoResponse контактные данные бронирования
type CustomerInfoResponse struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PlayerCount     int     `json:"playerCount"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string               `json:"id"`
	FacilityID    string               `json:"facilityId"`
	FacilityName  string               `json:"facilityName"`
	Date          string               `json:"date"`     // "2025-01-10"
	Time          string               `json:"time"`     // "09:00"
	Duration      int                  `json:"duration"` // в часах
	CustomerInfo  CustomerInfoResponse `json:"customerInfo"`
	TotalAmount   float64              `json:"totalAmount"`
	Status        string               `json:"status"`
	PaymentMethod string               `json:"paymentMethod"`
	CreatedAt     string               `json:"createdAt"`
}

// FromDomainBooking конвертирует domain модель бронирования в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		FacilityID:   b.FacilityID,
		FacilityName: b.FacilityName,
		Date:         b.Date,
		Time:         b.StartTime.String(),
		Duration:     b.DurationHours,
		CustomerInfo: CustomerInfoResponse{
			Name:            b.Customer.Name,
			Email:           b.Customer.Email,
			Phone:           b.Customer.Phone,
			PlayerCount:     b.Customer.PlayerCount,
			SpecialRequests: b.Customer.SpecialRequests,
		},
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
