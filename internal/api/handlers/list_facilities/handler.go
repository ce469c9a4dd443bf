package list_facilities

import (
	"net/http"

	"github.com/sportbook/SB-BookingService/internal/api/handlers"
	"github.com/sportbook/SB-BookingService/internal/service/catalog/models"
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

// Handle GET /api/v1/facilities
// Query params: search (optional), sport (optional, "All" = без фильтра)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListFacilitiesRequest{
		Search: r.URL.Query().Get("search"),
		Sport:  r.URL.Query().Get("sport"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: search=%q, sport=%q, error=%v",
			req.Search, req.Sport, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities listed successfully: count=%d, search=%q, sport=%q",
		result.Total, req.Search, req.Sport)
	handlers.RespondJSON(w, http.StatusOK, result)
}
