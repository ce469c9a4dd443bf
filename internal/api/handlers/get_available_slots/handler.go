package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sportbook/SB-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/sportbook/SB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingFacilityID  = "facility ID is required"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgFacilityNotFound   = "facility not found"
	msgDateInPast         = "date must not be in the past"
	msgDateOutsideHorizon = "date is outside the 7-day booking horizon"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityID := vars["facilityId"]
	if facilityID == "" {
		h.logger.Warn("GET /facilities/{id}/available-slots - Missing facility ID")
		handlers.RespondBadRequest(w, msgMissingFacilityID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /facilities/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(facilityID, dateStr)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/available-slots - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /facilities/{id}/available-slots - Date in past: facility_id=%s, date=%s",
				facilityID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateOutsideHorizon):
			h.logger.Warn("GET /facilities/{id}/available-slots - Date outside horizon: facility_id=%s, date=%s",
				facilityID, dateStr)
			handlers.RespondBadRequest(w, msgDateOutsideHorizon)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /facilities/{id}/available-slots - Failed to get slots: facility_id=%s, date=%s, error=%v",
				facilityID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /facilities/{id}/available-slots - Slots retrieved successfully: facility_id=%s, date=%s, slots_count=%d",
		facilityID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
