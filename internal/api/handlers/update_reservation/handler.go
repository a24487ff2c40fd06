package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/service/reservations"
)

const (
	msgInvalidID          = "identifiant de réservation invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidUpdate      = "statut, paiement ou notes invalides"
	msgNotFound           = "réservation introuvable"
	msgSlotTaken          = "le créneau est déjà occupé par une autre réservation"
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

// Handle PATCH /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	res, err := h.service.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{id} - Invalid update: id=%d, error=%v", id, err)
			handlers.RespondUnprocessable(w, msgInvalidUpdate)
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrSlotTaken):
			handlers.RespondConflict(w, msgSlotTaken)
		default:
			h.logger.Error("PATCH /admin/reservations/{id} - Failed to update reservation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id} - Reservation updated: id=%d, status=%s", id, res.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(res))
}
