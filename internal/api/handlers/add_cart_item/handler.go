package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	cartService "github.com/m04kA/CleanHome-BookingService/internal/service/cart"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgMissingServiceID   = "le service est obligatoire"
	msgInvalidSession     = "identifiant de session invalide"
	msgServiceNotFound    = "service introuvable"
	msgIncompleteOptions  = "options incomplètes, prix estimé par défaut"
)

type Handler struct {
	service CartService
	catalog Catalog
	logger  Logger
}

func NewHandler(service CartService, catalog Catalog, logger Logger) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/carts/{sessionId}/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ServiceID == "" {
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	cart, item, err := h.service.AddItem(r.Context(), sessionID, req.ServiceID, req.FormData)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrInvalidSession):
			handlers.RespondBadRequest(w, msgInvalidSession)

		case errors.Is(err, cartService.ErrServiceNotFound):
			h.logger.Warn("POST /carts/{id}/items - Service not found: service=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /carts/{id}/items - Failed to add item: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := AddItemResponse{Item: item, Cart: handlers.FromCart(cart), OptionsComplete: true}

	// Позиция уже в корзине; неполные опции только сообщаются клиенту
	if entry, err := h.catalog.Get(req.ServiceID); err == nil {
		if err := entry.Validate(req.FormData); err != nil {
			h.logger.Info("POST /carts/{id}/items - Incomplete options: service=%s, error=%v", req.ServiceID, err)
			resp.OptionsComplete = false
			resp.OptionsMessage = msgIncompleteOptions
		}
	}

	h.logger.Info("POST /carts/{id}/items - Item added: session=%s, service=%s, price=%.2f",
		sessionID, req.ServiceID, item.EstimatedPrice)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
