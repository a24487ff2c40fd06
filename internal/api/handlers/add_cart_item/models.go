package add_cart_item

import (
	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// AddItemRequest HTTP request model
type AddItemRequest struct {
	ServiceID string         `json:"serviceId"`
	FormData  map[string]any `json:"formData"`
}

// AddItemResponse HTTP response model
// OptionsComplete=false: позиция добавлена, но оценена по цене по умолчанию
type AddItemResponse struct {
	Item            *domain.CartItem       `json:"item"`
	Cart            *handlers.CartResponse `json:"cart"`
	OptionsComplete bool                   `json:"optionsComplete"`
	OptionsMessage  string                 `json:"optionsMessage,omitempty"`
}
