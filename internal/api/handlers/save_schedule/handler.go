package save_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/api/middleware"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule"
)

const (
	msgMissingEditor = "administrateur inconnu"
	msgNothingToSave = "aucune modification à enregistrer"
	msgSaveFailed    = "l'enregistrement a échoué, vos modifications sont conservées"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/schedule/save
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	editor, ok := middleware.EditorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingEditor)
		return
	}

	saved, err := h.service.Save(r.Context(), editor)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNothingToSave):
			handlers.RespondUnprocessable(w, msgNothingToSave)
		default:
			h.logger.Error("POST /admin/schedule/save - Failed to save: editor=%s, pending=%d, error=%v",
				editor, h.service.Pending(editor).Count, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	h.logger.Info("POST /admin/schedule/save - Schedule saved: editor=%s, slots=%d", editor, saved)
	handlers.RespondJSON(w, http.StatusOK, SaveResponse{Saved: saved})
}
