package availability

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListReserved(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория настроек доступности
type ScheduleRepository interface {
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.AdminScheduleSlot, error)
}

// Metrics счетчик обновлений снимка
type Metrics interface {
	IncAvailabilityRefresh(trigger string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
