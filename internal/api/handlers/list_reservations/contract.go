package list_reservations

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type ReservationService interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

