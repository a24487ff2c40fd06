package add_cart_item

import (
	"context"

	"github.com/m04kA/CleanHome-BookingService/internal/catalog"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type CartService interface {
	AddItem(ctx context.Context, sessionID, serviceID string, formData map[string]any) (*domain.Cart, *domain.CartItem, error)
}

type Catalog interface {
	Get(id string) (*catalog.Entry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
