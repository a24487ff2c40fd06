package wizard

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/usecase/submit_reservation"
)

// SessionRepository хранилище состояния мастера
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.WizardSession, error)
	Save(ctx context.Context, session *domain.WizardSession) error
	Delete(ctx context.Context, sessionID string) error
}

// CartService корзина сессии
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	SetContactInfo(ctx context.Context, sessionID string, contact domain.ContactInfo) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) (*domain.Cart, error)
}

// Availability проверка доступности слота
type Availability interface {
	RefreshDate(ctx context.Context, date time.Time) error
	IsAvailable(ctx context.Context, date time.Time, period domain.Period) (bool, error)
}

// Submitter создание резервации из корзины
type Submitter interface {
	Execute(ctx context.Context, req *submit_reservation.Request) (*submit_reservation.Response, error)
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
