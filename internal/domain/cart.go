package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRef catalog service as seen by the cart
type ServiceRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	QuoteOnly   bool   `json:"quoteOnly"`
}

// CartItem one configured service in the cart
type CartItem struct {
	ID             string         `json:"id"`
	Service        ServiceRef     `json:"service"`
	FormData       map[string]any `json:"formData"`
	EstimatedPrice float64        `json:"estimatedPrice"` // 0 = quote required
	Timestamp      time.Time      `json:"timestamp"`
}

// IsQuote reports whether the item is priced on quote
func (i CartItem) IsQuote() bool {
	return i.Service.QuoteOnly || i.EstimatedPrice == QuotePrice
}

// AddressRef address picked from a geocoding suggestion
type AddressRef struct {
	ID        string     `json:"id"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"` // [lon, lat]
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Postcode  string     `json:"postcode"`
}

// ContactInfo customer contact details
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Cart staging area for one future reservation
type Cart struct {
	ID          string
	SessionID   string
	Items       []CartItem
	TotalPrice  float64
	Address     *AddressRef
	ContactInfo *ContactInfo
	UpdatedAt   time.Time
}

// NewCart creates an empty cart with a fresh session
func NewCart() *Cart {
	return &Cart{
		ID:        uuid.NewString(),
		SessionID: uuid.NewString(),
		Items:     []CartItem{},
	}
}

// AddItem appends a configured service and recomputes the total.
// It never rejects content; option validation belongs to the caller.
func (c *Cart) AddItem(service ServiceRef, formData map[string]any, price float64, now time.Time) CartItem {
	if formData == nil {
		formData = map[string]any{}
	}
	if service.QuoteOnly {
		price = QuotePrice
	}
	item := CartItem{
		ID:             uuid.NewString(),
		Service:        service,
		FormData:       formData,
		EstimatedPrice: price,
		Timestamp:      now,
	}
	c.Items = append(c.Items, item)
	c.Recalculate()
	c.UpdatedAt = now
	return item
}

// RemoveItem deletes an item by id; unknown ids are ignored
func (c *Cart) RemoveItem(itemID string, now time.Time) bool {
	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Recalculate()
			c.UpdatedAt = now
			return true
		}
	}
	return false
}

// SetAddress replaces the address
func (c *Cart) SetAddress(address AddressRef, now time.Time) {
	c.Address = &address
	c.UpdatedAt = now
}

// SetContactInfo replaces the contact info
func (c *Cart) SetContactInfo(contact ContactInfo, now time.Time) {
	c.ContactInfo = &contact
	c.UpdatedAt = now
}

// Recalculate recomputes TotalPrice from items, skipping quote-only ones
func (c *Cart) Recalculate() {
	total := 0.0
	for _, item := range c.Items {
		if item.Service.QuoteOnly {
			continue
		}
		total += item.EstimatedPrice
	}
	c.TotalPrice = total
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// HasAddress reports whether an address was selected
func (c *Cart) HasAddress() bool {
	return c.Address != nil
}

// HasContactInfo reports whether contact info was set
func (c *Cart) HasContactInfo() bool {
	return c.ContactInfo != nil
}

// HasQuoteItems reports whether some item is priced on quote
func (c *Cart) HasQuoteItems() bool {
	for _, item := range c.Items {
		if item.IsQuote() {
			return true
		}
	}
	return false
}

// ServiceNames names of all items in cart order
func (c *Cart) ServiceNames() []string {
	names := make([]string, len(c.Items))
	for i, item := range c.Items {
		names[i] = item.Service.Name
	}
	return names
}

// CartSnapshot serialized form of a cart; the total is not stored
type CartSnapshot struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"sessionId"`
	Items       []CartItem   `json:"items"`
	Address     *AddressRef  `json:"address,omitempty"`
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Snapshot converts the cart to its serialized form
func (c *Cart) Snapshot() CartSnapshot {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return CartSnapshot{
		ID:          c.ID,
		SessionID:   c.SessionID,
		Items:       items,
		Address:     c.Address,
		ContactInfo: c.ContactInfo,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CartFromSnapshot rebuilds a cart and recomputes derived fields
func CartFromSnapshot(s CartSnapshot) *Cart {
	items := s.Items
	if items == nil {
		items = []CartItem{}
	}
	cart := &Cart{
		ID:          s.ID,
		SessionID:   s.SessionID,
		Items:       items,
		Address:     s.Address,
		ContactInfo: s.ContactInfo,
		UpdatedAt:   s.UpdatedAt,
	}
	cart.Recalculate()
	return cart
}

// PricingKind how a catalog service is priced
type PricingKind string

const (
	PricingPerUnit        PricingKind = "per_unit"
	PricingSizeTable      PricingKind = "size_table"
	PricingVehiclePackage PricingKind = "vehicle_package"
	PricingFixed          PricingKind = "fixed"
	PricingQuote          PricingKind = "quote"
	// PricingDefault service without a rule, priced at DefaultEstimatedPrice
	PricingDefault PricingKind = "default"
)
