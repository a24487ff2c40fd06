package set_cart_address

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type CartService interface {
	SetAddress(ctx context.Context, sessionID string, address domain.AddressRef) (*domain.Cart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
