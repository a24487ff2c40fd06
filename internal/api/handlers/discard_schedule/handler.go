package discard_schedule

import (
	"net/http"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/api/middleware"
)

const msgMissingEditor = "administrateur inconnu"

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

// Handle DELETE /api/v1/admin/schedule/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	editor, ok := middleware.EditorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingEditor)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DiscardResponse{Discarded: h.service.Discard(editor)})
}
