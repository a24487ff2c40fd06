package get_cart

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

// Handle GET /api/v1/carts/{sessionId}
// Неизвестная сессия возвращает пустую корзину
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	cart, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrInvalidSession):
			handlers.RespondBadRequest(w, msgInvalidSession)
		default:
			h.logger.Error("GET /carts/{id} - Failed to get cart: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCart(cart))
}
