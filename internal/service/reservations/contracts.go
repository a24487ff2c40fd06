package reservations

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Update(ctx context.Context, id int64, upd domain.ReservationUpdate) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// Availability обновление снимка после изменения статуса
type Availability interface {
	Refresh(ctx context.Context, trigger string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
