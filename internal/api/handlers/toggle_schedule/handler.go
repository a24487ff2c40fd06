package toggle_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/api/middleware"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule"
)

const (
	msgMissingEditor      = "administrateur inconnu"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSlot        = "date (AAAA-MM-JJ) ou période (morning, afternoon) invalide"
)

type Handler struct {
	service ScheduleService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service ScheduleService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/schedule/toggle
// Изменение попадает в список несохраненных до вызова save
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	editor, ok := middleware.EditorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingEditor)
		return
	}

	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedule/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := handlers.ParseDate(req.Date, h.loc)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}
	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	changes, err := h.service.Toggle(r.Context(), editor, date, period)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		default:
			h.logger.Error("POST /admin/schedule/toggle - Failed to toggle: editor=%s, error=%v", editor, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromPending(changes))
}
