package geocode

import (
	"errors"
	"net/http"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/geocoder"
)

const (
	minQueryLength = 3

	msgQueryTooShort = "saisissez au moins 3 caractères"
)

type Handler struct {
	geocoder Geocoder
	logger   Logger
}

func NewHandler(geocoder Geocoder, logger Logger) *Handler {
	return &Handler{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Handle GET /api/v1/geocode?q=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if len([]rune(q)) < minQueryLength {
		handlers.RespondBadRequest(w, msgQueryTooShort)
		return
	}

	results, err := h.geocoder.Search(r.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, geocoder.ErrEmptyQuery):
			handlers.RespondBadRequest(w, msgQueryTooShort)
		default:
			h.logger.Error("GET /geocode - Failed to search: query=%q, error=%v", q, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	if results == nil {
		results = []domain.AddressRef{}
	}

	handlers.RespondJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: results})
}
