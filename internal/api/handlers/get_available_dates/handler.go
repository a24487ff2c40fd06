package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	availabilityService "github.com/m04kA/CleanHome-BookingService/internal/service/availability"
)

const (
	defaultDays = 30

	msgInvalidDate = "format de date invalide, attendu AAAA-MM-JJ"
	msgInvalidDays = "nombre de jours invalide"
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

// Handle GET /api/v1/availability/dates?from=YYYY-MM-DD&days=N
// По умолчанию с сегодняшнего дня на 30 дней; в ответе только даты, которые можно выбрать
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from := h.service.Today()
	if fromStr := query.Get("from"); fromStr != "" {
		parsed, err := handlers.ParseDate(fromStr, h.service.Location())
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = parsed
	}

	days := defaultDays
	if daysStr := query.Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.service.SelectableDates(r.Context(), from, days)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDays)
		default:
			h.logger.Error("GET /availability/dates - Failed to get dates: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDays(result))
}
