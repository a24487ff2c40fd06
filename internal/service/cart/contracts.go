package cart

import (
	"context"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/catalog"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// CartRepository интерфейс хранилища корзин
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// Catalog интерфейс реестра услуг
type Catalog interface {
	Get(id string) (*catalog.Entry, error)
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
