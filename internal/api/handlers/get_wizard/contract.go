package get_wizard

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
)

type WizardService interface {
	State(ctx context.Context, sessionID string) (*models.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
