package wizard_slot

import (
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Date   string `json:"date"`
	Period string `json:"period"`
}

// Parse дата в часовом поясе бизнеса и период
func (r SelectSlotRequest) Parse(loc *time.Location) (time.Time, domain.Period, error) {
	date, err := handlers.ParseDate(r.Date, loc)
	if err != nil {
		return time.Time{}, "", err
	}
	period, err := domain.ParsePeriod(r.Period)
	if err != nil {
		return time.Time{}, "", err
	}
	return date, period, nil
}
