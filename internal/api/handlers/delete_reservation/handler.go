package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/service/reservations"
)

const (
	msgInvalidID = "identifiant de réservation invalide"
	msgNotFound  = "réservation introuvable"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /admin/reservations/{id} - Failed to delete reservation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/{id} - Reservation deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
