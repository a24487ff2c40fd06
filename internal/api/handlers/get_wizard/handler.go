package get_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	wizardService "github.com/m04kA/CleanHome-BookingService/internal/service/wizard"
)

const msgInvalidSession = "identifiant de session invalide"

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

// Handle GET /api/v1/carts/{sessionId}/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.service.State(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizardService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSession)
		default:
			h.logger.Error("GET /carts/{id}/wizard - Failed to load wizard: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizard(state.Session, state.Cart, state.CanProceed))
}
