package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
)

// validateRequest валидирует запрос и нормализует форму.
// Нормализация: playerCount 0 -> 1, пустой paymentMethod -> mpesa (меняет req).
//
// Обязательные контактные поля проверяются только на непустоту:
// формат email и телефона не проверяется.
func validateRequest(req *Request) (*domain.CustomerInfo, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.FacilityID == "" {
		return nil, fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" || phone == "" {
		return nil, ErrMissingInformation
	}

	playerCount := req.PlayerCount
	if playerCount == 0 {
		playerCount = domain.DefaultPlayerCount
	}
	if playerCount < domain.MinPlayerCount || playerCount > domain.MaxPlayerCount {
		return nil, fmt.Errorf("%w: playerCount must be within [%d..%d]",
			ErrInvalidInput, domain.MinPlayerCount, domain.MaxPlayerCount)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return nil, fmt.Errorf("%w: specialRequests is too long (max %d)",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = string(domain.PaymentMpesa)
	}
	if !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	return &domain.CustomerInfo{
		Name:            name,
		Email:           email,
		Phone:           phone,
		PlayerCount:     playerCount,
		SpecialRequests: req.SpecialRequests,
	}, nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
