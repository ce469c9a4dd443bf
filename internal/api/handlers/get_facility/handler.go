package get_facility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sportbook/SB-BookingService/internal/api/handlers"
	"github.com/sportbook/SB-BookingService/internal/service/catalog"
)

const (
	msgMissingFacilityID = "facility ID is required"
	msgNotFound          = "facility not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID := vars["facilityId"]
	if facilityID == "" {
		h.logger.Warn("GET /facilities/{id} - Missing facility ID")
		handlers.RespondBadRequest(w, msgMissingFacilityID)
		return
	}

	facility, err := h.service.GetByID(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id} - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /facilities/{id} - Failed to get facility: facility_id=%s, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id} - Facility retrieved successfully: facility_id=%s", facilityID)
	handlers.RespondJSON(w, http.StatusOK, facility)
}
