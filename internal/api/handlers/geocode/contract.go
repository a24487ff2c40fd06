package geocode

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type Geocoder interface {
	Search(ctx context.Context, query string) ([]domain.AddressRef, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
