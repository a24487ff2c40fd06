package wizard_step

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
)

type WizardService interface {
	GoToStep(ctx context.Context, sessionID string, target domain.Step) (*models.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
