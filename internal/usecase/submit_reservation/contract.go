package submit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/eventbus"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/formnotifier"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ListActiveBySlot(ctx context.Context, date time.Time, period domain.Period) ([]*domain.Reservation, error)
}

// ScheduleRepository интерфейс репозитория настроек доступности
type ScheduleRepository interface {
	Get(ctx context.Context, date time.Time, period domain.Period) (*domain.AdminScheduleSlot, error)
}

// CartMirror копия корзины в БД (best-effort)
type CartMirror interface {
	SaveSubmitted(ctx context.Context, cart *domain.Cart, reservationID int64) error
}

// FormNotifier уведомление через форму сайта (best-effort)
type FormNotifier interface {
	Send(ctx context.Context, n formnotifier.Notification) error
}

// EventPublisher публикация событий (best-effort)
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event eventbus.ReservationCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики резерваций
type Metrics interface {
	IncReservationCreated()
	IncReservationConflict()
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
