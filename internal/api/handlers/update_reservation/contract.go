package update_reservation

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type ReservationService interface {
	Update(ctx context.Context, id int64, upd domain.ReservationUpdate) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
