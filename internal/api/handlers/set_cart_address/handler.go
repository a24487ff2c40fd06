package set_cart_address

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	cartService "github.com/m04kA/CleanHome-BookingService/internal/service/cart"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSession     = "identifiant de session invalide"
	msgInvalidAddress     = "adresse invalide, choisissez une suggestion"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/carts/{sessionId}/address
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /carts/{id}/address - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cart, err := h.service.SetAddress(r.Context(), sessionID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrInvalidSession):
			handlers.RespondBadRequest(w, msgInvalidSession)
		case errors.Is(err, cartService.ErrInvalidAddress):
			handlers.RespondUnprocessable(w, msgInvalidAddress)
		default:
			h.logger.Error("PUT /carts/{id}/address - Failed to set address: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCart(cart))
}
