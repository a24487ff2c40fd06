package schedule

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория настроек доступности
type ScheduleRepository interface {
	Get(ctx context.Context, date time.Time, period domain.Period) (*domain.AdminScheduleSlot, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.AdminScheduleSlot, error)
	UpsertBatch(ctx context.Context, slots []domain.AdminScheduleSlot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Availability обновление снимка доступности после сохранения
type Availability interface {
	Refresh(ctx context.Context, trigger string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
