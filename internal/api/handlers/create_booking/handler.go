package create_booking

import (
	"errors"
	"net/http"

	"github.com/sportbook/SB-BookingService/internal/api/handlers"
	"github.com/sportbook/SB-BookingService/internal/api/middleware"
	createBooking "github.com/sportbook/SB-BookingService/internal/usecase/create_booking"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidTime         = "invalid start time format, expected HH:MM"
	msgMissingSessionID    = "missing session ID"
	msgMissingInformation  = "missing information: please fill in all required fields"
	msgFacilityNotFound    = "facility not found"
	msgSlotNotAvailable    = "the selected time slot is not available"
	msgBookingInProgress   = "a booking is already being processed for this session"
	msgInvalidBookingDate  = "booking date must not be in the past"
	msgDateOutsideHorizon  = "booking date is outside the 7-day booking horizon"
	msgInvalidBookingInput = "invalid booking data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем sessionID из контекста (через middleware Session)
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingInformation):
			h.logger.Warn("POST /bookings - Missing information: session=%s, facility_id=%s",
				sessionID, req.FacilityID)
			handlers.RespondBadRequest(w, msgMissingInformation)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: session=%s, facility_id=%s, date=%s, time=%s",
				sessionID, req.FacilityID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrBookingInProgress):
			h.logger.Warn("POST /bookings - Booking in progress: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgBookingInProgress)

		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%s", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: facility_id=%s, date=%s",
				req.FacilityID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateOutsideHorizon):
			h.logger.Warn("POST /bookings - Date outside horizon: facility_id=%s, date=%s",
				req.FacilityID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutsideHorizon)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: session=%s, facility_id=%s, error=%v",
				sessionID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, session=%s, facility_id=%s",
		result.ID, sessionID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
