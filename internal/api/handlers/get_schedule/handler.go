package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/api/middleware"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule"
)

const (
	defaultRangeDays = 30

	msgMissingEditor = "administrateur inconnu"
	msgInvalidRange  = "période invalide, attendu from et to au format AAAA-MM-JJ"
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

// Handle GET /api/v1/admin/schedule?from=YYYY-MM-DD&to=YYYY-MM-DD
// По умолчанию 30 дней начиная с сегодняшнего
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	editor, ok := middleware.EditorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingEditor)
		return
	}

	now := time.Now().In(h.loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	to := from.AddDate(0, 0, defaultRangeDays-1)

	query := r.URL.Query()
	if v := query.Get("from"); v != "" {
		parsed, err := handlers.ParseDate(v, h.loc)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		from = parsed
		to = from.AddDate(0, 0, defaultRangeDays-1)
	}
	if v := query.Get("to"); v != "" {
		parsed, err := handlers.ParseDate(v, h.loc)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		to = parsed
	}

	views, err := h.service.View(r.Context(), editor, from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /admin/schedule - Failed to load schedule: editor=%s, error=%v", editor, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromViews(views, h.service.Pending(editor)))
}
