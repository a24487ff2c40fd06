package save_schedule

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Save(ctx context.Context, editor string) (int, error)
	Pending(editor string) *models.PendingChanges
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
