package wizard_finish

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidAction      = "action inconnue, attendu restart ou close"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/carts/{sessionId}/wizard/finish
// restart возвращает новую сессию, close отвечает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req FinishRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/wizard/finish - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, err := models.ParseFinishAction(req.Action)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	state, err := h.service.Finish(r.Context(), sessionID, action)
	if err != nil {
		h.logger.Error("POST /carts/{id}/wizard/finish - Failed to finish: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if state == nil {
		handlers.RespondNoContent(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizard(state.Session, state.Cart, state.CanProceed))
}
