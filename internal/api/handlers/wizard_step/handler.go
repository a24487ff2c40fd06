package wizard_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	wizardService "github.com/m04kA/CleanHome-BookingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidStep        = "étape inconnue"
	msgIncompleteStep     = "étape incomplète"
	msgStepSkipped        = "les étapes doivent être suivies dans l'ordre"
	msgAlreadySubmitted   = "la réservation a déjà été envoyée"
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

// Handle POST /api/v1/carts/{sessionId}/wizard/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req StepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/wizard/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	step, err := domain.ParseStep(req.Step)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStep)
		return
	}

	state, err := h.service.GoToStep(r.Context(), sessionID, step)
	if err != nil {
		switch {
		case errors.Is(err, wizardService.ErrIncompleteStep):
			handlers.RespondUnprocessable(w, msgIncompleteStep)
		case errors.Is(err, wizardService.ErrStepSkipped):
			handlers.RespondUnprocessable(w, msgStepSkipped)
		case errors.Is(err, wizardService.ErrAlreadySubmitted):
			handlers.RespondConflict(w, msgAlreadySubmitted)
		case errors.Is(err, wizardService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStep)
		default:
			h.logger.Error("POST /carts/{id}/wizard/step - Failed to change step: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizard(state.Session, state.Cart, state.CanProceed))
}
