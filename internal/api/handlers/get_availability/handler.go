package get_availability

import (
	"net/http"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
)

const (
	msgMissingDate = "la date est obligatoire"
	msgInvalidDate = "format de date invalide, attendu AAAA-MM-JJ"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
// Даты, которые нельзя выбрать (сегодня, прошлое, воскресенье), возвращаются с selectable=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate(dateStr, h.service.Location())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day, err := h.service.DayAvailability(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDayAvailability(day))
}
