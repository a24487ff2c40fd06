package clear_cart

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type CartService interface {
	Clear(ctx context.Context, sessionID string) (*domain.Cart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
