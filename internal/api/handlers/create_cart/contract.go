package create_cart

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type CartService interface {
	Create(ctx context.Context) *domain.Cart
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
