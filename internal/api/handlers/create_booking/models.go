package create_booking

import (
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
	createBooking "github.com/sportbook/SB-BookingService/internal/usecase/create_booking"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID      string  `json:"facilityId"`
	Date            string  `json:"date"`      // "2025-01-10"
	StartTime       string  `json:"startTime"` // "09:00"
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PlayerCount     int     `json:"playerCount,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	PaymentMethod   string  `json:"paymentMethod,omitempty"` // mpesa | card
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	FacilityID      string  `json:"facilityId"`
	FacilityName    string  `json:"facilityName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationHours   int     `json:"durationHours"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PlayerCount     int     `json:"playerCount"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(sessionID string) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SessionID:       sessionID,
		FacilityID:      r.FacilityID,
		Date:            date,
		StartTime:       startTime,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		PlayerCount:     r.PlayerCount,
		SpecialRequests: r.SpecialRequests,
		PaymentMethod:   r.PaymentMethod,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		FacilityID:      resp.FacilityID,
		FacilityName:    resp.FacilityName,
		Date:            resp.Date,
		StartTime:       resp.StartTime.String(),
		DurationHours:   resp.DurationHours,
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		PlayerCount:     resp.PlayerCount,
		SpecialRequests: resp.SpecialRequests,
		TotalAmount:     resp.TotalAmount,
		Status:          resp.Status,
		PaymentMethod:   resp.PaymentMethod,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
