package wizard_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	wizardService "github.com/m04kA/CleanHome-BookingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSlot        = "date (AAAA-MM-JJ) ou période (morning, afternoon) invalide"
	msgDateNotSelectable  = "cette date ne peut pas être choisie"
	msgSlotUnavailable    = "ce créneau n'est plus disponible"
	msgAlreadySubmitted   = "la réservation a déjà été envoyée"
)

type Handler struct {
	service WizardService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service WizardService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Handle PUT /api/v1/carts/{sessionId}/wizard/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /carts/{id}/wizard/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, period, err := req.Parse(h.loc)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	state, err := h.service.SelectSlot(r.Context(), sessionID, date, period)
	if err != nil {
		switch {
		case errors.Is(err, wizardService.ErrDateNotSelectable):
			handlers.RespondUnprocessable(w, msgDateNotSelectable)
		case errors.Is(err, wizardService.ErrSlotUnavailable):
			h.logger.Warn("PUT /carts/{id}/wizard/slot - Slot unavailable: date=%s, period=%s", req.Date, period)
			handlers.RespondConflict(w, msgSlotUnavailable)
		case errors.Is(err, wizardService.ErrAlreadySubmitted):
			handlers.RespondConflict(w, msgAlreadySubmitted)
		case errors.Is(err, wizardService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		default:
			h.logger.Error("PUT /carts/{id}/wizard/slot - Failed to select slot: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizard(state.Session, state.Cart, state.CanProceed))
}
