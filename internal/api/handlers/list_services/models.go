package list_services

import (
	"github.com/m04kA/CleanHome-BookingService/internal/catalog"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// ServiceResponse услуга каталога со схемой формы
type ServiceResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Icon        string             `json:"icon"`
	Description string             `json:"description"`
	Pricing     domain.PricingKind `json:"pricing"`
	QuoteOnly   bool               `json:"quoteOnly"`
	Fields      []catalog.Field    `json:"fields"`
}

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
	Currency string            `json:"currency"`
}

// FromEntries конвертирует каталог в HTTP response
func FromEntries(entries []*catalog.Entry) *ServicesResponse {
	services := make([]ServiceResponse, len(entries))
	for i, e := range entries {
		fields := e.Fields
		if fields == nil {
			fields = []catalog.Field{}
		}
		services[i] = ServiceResponse{
			ID:          e.Ref.ID,
			Name:        e.Ref.Name,
			Icon:        e.Ref.Icon,
			Description: e.Ref.Description,
			Pricing:     e.Pricing,
			QuoteOnly:   e.Ref.QuoteOnly,
			Fields:      fields,
		}
	}
	return &ServicesResponse{Services: services, Currency: domain.Currency}
}
