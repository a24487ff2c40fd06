package wizard_submit

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
)

type WizardService interface {
	Submit(ctx context.Context, sessionID string, contact models.Contact, notes *string) (*models.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
