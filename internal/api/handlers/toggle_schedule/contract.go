package toggle_schedule

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Toggle(ctx context.Context, editor string, date time.Time, period domain.Period) (*models.PendingChanges, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
