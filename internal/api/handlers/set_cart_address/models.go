package set_cart_address

import "github.com/m04kA/CleanHome-BookingService/internal/domain"

// SetAddressRequest подсказка геокодера, выбранная клиентом
type SetAddressRequest struct {
	ID        string     `json:"id"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Postcode  string     `json:"postcode"`
}

// ToDomain конвертирует запрос в доменную модель
func (r SetAddressRequest) ToDomain() domain.AddressRef {
	return domain.AddressRef{
		ID:        r.ID,
		PlaceName: r.PlaceName,
		Center:    r.Center,
		Address:   r.Address,
		City:      r.City,
		Postcode:  r.Postcode,
	}
}
