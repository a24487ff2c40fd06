package remove_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	cartService "github.com/m04kA/CleanHome-BookingService/internal/service/cart"
)

const msgInvalidSession = "identifiant de session invalide"

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

// Handle DELETE /api/v1/carts/{sessionId}/items/{itemId}
// Удаление неизвестной позиции ничего не меняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, itemID := vars["sessionId"], vars["itemId"]

	cart, err := h.service.RemoveItem(r.Context(), sessionID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrInvalidSession):
			handlers.RespondBadRequest(w, msgInvalidSession)
		default:
			h.logger.Error("DELETE /carts/{id}/items/{id} - Failed to remove item: session=%s, item=%s, error=%v",
				sessionID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCart(cart))
}
