package clear_cart

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
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

// Handle DELETE /api/v1/carts/{sessionId}
// Возвращает новую пустую корзину с новой сессией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	cart, err := h.service.Clear(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("DELETE /carts/{id} - Failed to clear cart: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /carts/{id} - Cart cleared: session=%s, new_session=%s", sessionID, cart.SessionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromCart(cart))
}
