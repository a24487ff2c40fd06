package get_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Location() *time.Location
	Today() time.Time
	SelectableDates(ctx context.Context, from time.Time, days int) ([]models.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
