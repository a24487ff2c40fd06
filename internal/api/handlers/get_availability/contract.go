package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Location() *time.Location
	DayAvailability(ctx context.Context, date time.Time) (*models.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
