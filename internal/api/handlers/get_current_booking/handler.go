package get_current_booking

import (
	"errors"
	"net/http"

	"github.com/sportbook/SB-BookingService/internal/api/handlers"
	"github.com/sportbook/SB-BookingService/internal/api/middleware"
	"github.com/sportbook/SB-BookingService/internal/service/bookings"
)

const (
	msgMissingSessionID = "missing session ID"
	msgNotFound         = "no booking found for this session"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/current
// Отдает последнее бронирование сессии; 404 - сигнал клиенту показать
// пустое состояние со ссылкой обратно в каталог.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/current - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSessionID)
		return
	}

	booking, err := h.service.GetCurrent(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/current - Booking not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/current - Failed to get booking: session=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/current - Booking retrieved successfully: booking_id=%s, session=%s",
		booking.ID, sessionID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
