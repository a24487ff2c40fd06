package list_services

import (
	"net/http"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromEntries(h.catalog.List()))
}
