package wizard_submit

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	wizardService "github.com/m04kA/CleanHome-BookingService/internal/service/wizard"
	submitReservation "github.com/m04kA/CleanHome-BookingService/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidContact     = "nom, e-mail valide et téléphone (10 caractères minimum) sont obligatoires"
	msgIncompleteStep     = "étape incomplète"
	msgSubmitInProgress   = "votre réservation est déjà en cours d'envoi"
	msgAlreadySubmitted   = "la réservation a déjà été envoyée"
	msgMissingItems       = "votre panier est vide"
	msgMissingAddress     = "veuillez choisir une adresse"
	msgMissingSlot        = "veuillez choisir une date et une période"
	msgDateNotSelectable  = "cette date ne peut pas être choisie"
	msgSlotTaken          = "ce créneau vient d'être réservé, veuillez en choisir un autre"
	msgSlotUnavailable    = "ce créneau n'est pas disponible, veuillez en choisir un autre"
	msgInvalidInput       = "données de réservation invalides"
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

// Handle POST /api/v1/carts/{sessionId}/wizard/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/wizard/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.Submit(r.Context(), sessionID, req.ToContact(), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, wizardService.ErrSubmitInProgress):
			handlers.RespondConflict(w, msgSubmitInProgress)

		case errors.Is(err, wizardService.ErrAlreadySubmitted):
			handlers.RespondConflict(w, msgAlreadySubmitted)

		case errors.Is(err, wizardService.ErrInvalidContact),
			errors.Is(err, submitReservation.ErrMissingContact):
			handlers.RespondUnprocessable(w, msgInvalidContact)

		case errors.Is(err, wizardService.ErrIncompleteStep):
			handlers.RespondUnprocessable(w, msgIncompleteStep)

		case errors.Is(err, submitReservation.ErrMissingItems):
			handlers.RespondUnprocessable(w, msgMissingItems)

		case errors.Is(err, submitReservation.ErrMissingAddress):
			handlers.RespondUnprocessable(w, msgMissingAddress)

		case errors.Is(err, submitReservation.ErrMissingSlot):
			handlers.RespondUnprocessable(w, msgMissingSlot)

		case errors.Is(err, submitReservation.ErrDateNotSelectable):
			handlers.RespondUnprocessable(w, msgDateNotSelectable)

		case errors.Is(err, submitReservation.ErrSlotTaken):
			h.logger.Warn("POST /carts/{id}/wizard/submit - Slot taken: session=%s", sessionID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, submitReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /carts/{id}/wizard/submit - Slot closed: session=%s", sessionID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, submitReservation.ErrInvalidInput),
			errors.Is(err, wizardService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /carts/{id}/wizard/submit - Failed to submit: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /carts/{id}/wizard/submit - Reservation created: session=%s, reservation_id=%d",
		sessionID, state.Session.Success.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromWizard(state.Session, state.Cart, state.CanProceed))
}
