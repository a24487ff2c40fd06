package create_cart

import (
	"net/http"

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

// Handle POST /api/v1/carts
// Новая сессия; корзина сохраняется при первом изменении
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cart := h.service.Create(r.Context())
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromCart(cart))
}
