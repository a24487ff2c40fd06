package set_cart_contact

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type CartService interface {
	SetContactInfo(ctx context.Context, sessionID string, contact domain.ContactInfo) (*domain.Cart, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
