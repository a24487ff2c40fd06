package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/service/reservations"
)

const msgInvalidParams = "paramètres de recherche invalides"

type Handler struct {
	service ReservationService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service ReservationService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
// Query params: status, from, to, search, limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToFilter(r.URL.Query(), h.loc)
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromReservations(result))
}
