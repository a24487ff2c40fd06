package wizard_slot

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
)

type WizardService interface {
	SelectSlot(ctx context.Context, sessionID string, date time.Time, period domain.Period) (*models.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
