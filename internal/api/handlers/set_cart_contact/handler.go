package set_cart_contact

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	cartService "github.com/m04kA/CleanHome-BookingService/internal/service/cart"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSession     = "identifiant de session invalide"
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

// Handle PUT /api/v1/carts/{sessionId}/contact
// Черновик контактов; проверка полей выполняется при отправке
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req domain.ContactInfo
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /carts/{id}/contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cart, err := h.service.SetContactInfo(r.Context(), sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrInvalidSession):
			handlers.RespondBadRequest(w, msgInvalidSession)
		default:
			h.logger.Error("PUT /carts/{id}/contact - Failed to set contact: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCart(cart))
}
