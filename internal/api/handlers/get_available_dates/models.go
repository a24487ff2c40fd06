package get_available_dates

import (
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/availability/models"
)

// DateResponse доступность одной даты
type DateResponse struct {
	Date      string `json:"date"`
	Morning   bool   `json:"morning"`
	Afternoon bool   `json:"afternoon"`
	Available bool   `json:"available"`
}

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []DateResponse `json:"dates"`
}

// FromDays конвертирует ответ сервиса в HTTP response
func FromDays(days []models.DayAvailability) *DatesResponse {
	dates := make([]DateResponse, len(days))
	for i, d := range days {
		dates[i] = DateResponse{
			Date:      d.Date.Format(domain.DateFormat),
			Morning:   d.Morning,
			Afternoon: d.Afternoon,
			Available: d.HasFreeSlot(),
		}
	}
	return &DatesResponse{Dates: dates}
}
