package get_available_slots

import (
	"time"

	"github.com/sportbook/SB-BookingService/internal/domain"
	getAvailableSlots "github.com/sportbook/SB-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FacilityID string `json:"facilityId"`
	Date       string `json:"date"`
	Slots      []Slot `json:"slots"`
}

// Slot модель часового слота
type Slot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(facilityID, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		FacilityID: facilityID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Status:          string(slot.Status),
		}
	}

	return &AvailableSlotsResponse{
		FacilityID: resp.FacilityID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
