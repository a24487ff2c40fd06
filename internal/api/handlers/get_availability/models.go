package get_availability

import (
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/availability/models"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
	Morning    bool   `json:"morning"`
	Afternoon  bool   `json:"afternoon"`
}

// FromDayAvailability конвертирует ответ сервиса в HTTP response
func FromDayAvailability(day *models.DayAvailability) *DayAvailabilityResponse {
	return &DayAvailabilityResponse{
		Date:       day.Date.Format(domain.DateFormat),
		Selectable: day.Selectable,
		Morning:    day.Morning,
		Afternoon:  day.Afternoon,
	}
}
