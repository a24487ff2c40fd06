package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	View(ctx context.Context, editor string, from, to time.Time) ([]models.SlotView, error)
	Pending(editor string) *models.PendingChanges
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
