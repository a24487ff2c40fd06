package handlers

import (
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// Общие модели ответов для корзины, мастера и резерваций

// CartResponse корзина сессии
type CartResponse struct {
	ID            string              `json:"id"`
	SessionID     string              `json:"sessionId"`
	Items         []domain.CartItem   `json:"items"`
	TotalPrice    float64             `json:"totalPrice"`
	Currency      string              `json:"currency"`
	HasQuoteItems bool                `json:"hasQuoteItems"`
	Address       *domain.AddressRef  `json:"address,omitempty"`
	ContactInfo   *domain.ContactInfo `json:"contactInfo,omitempty"`
	UpdatedAt     *time.Time          `json:"updatedAt,omitempty"`
}

// FromCart конвертирует корзину в HTTP ответ
func FromCart(cart *domain.Cart) *CartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	resp := &CartResponse{
		ID:            cart.ID,
		SessionID:     cart.SessionID,
		Items:         items,
		TotalPrice:    cart.TotalPrice,
		Currency:      domain.Currency,
		HasQuoteItems: cart.HasQuoteItems(),
		Address:       cart.Address,
		ContactInfo:   cart.ContactInfo,
	}
	if !cart.UpdatedAt.IsZero() {
		updated := cart.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

// SlotResponse слот (дата, период)
type SlotResponse struct {
	Date      string        `json:"date"`
	Period    domain.Period `json:"period"`
	ClockTime string        `json:"time"`
}

// FromSlot конвертирует слот в HTTP ответ
func FromSlot(slot domain.ScheduleSlot) *SlotResponse {
	return &SlotResponse{
		Date:      slot.Date.Format(domain.DateFormat),
		Period:    slot.Period,
		ClockTime: slot.Period.ClockTime(),
	}
}

// SuccessResponse итог после отправки
type SuccessResponse struct {
	ReservationID  int64         `json:"reservationId"`
	Address        string        `json:"address"`
	Services       []string      `json:"services"`
	Slot           *SlotResponse `json:"slot"`
	EstimatedPrice float64       `json:"estimatedPrice"`
	HasQuoteItems  bool          `json:"hasQuoteItems"`
}

// WizardResponse состояние мастера
type WizardResponse struct {
	SessionID  string               `json:"sessionId"`
	Step       domain.Step          `json:"step"`
	Slot       *SlotResponse        `json:"slot,omitempty"`
	CanProceed map[domain.Step]bool `json:"canProceed"`
	Success    *SuccessResponse     `json:"success,omitempty"`
	Cart       *CartResponse        `json:"cart"`
}

// FromWizard конвертирует состояние мастера в HTTP ответ
func FromWizard(session *domain.WizardSession, cart *domain.Cart, canProceed map[domain.Step]bool) *WizardResponse {
	resp := &WizardResponse{
		SessionID:  session.SessionID,
		Step:       session.Step,
		CanProceed: canProceed,
		Cart:       FromCart(cart),
	}
	if session.Slot != nil {
		resp.Slot = FromSlot(*session.Slot)
	}
	if s := session.Success; s != nil {
		resp.Success = &SuccessResponse{
			ReservationID:  s.ReservationID,
			Address:        s.Address,
			Services:       s.Services,
			Slot:           FromSlot(s.Slot),
			EstimatedPrice: s.EstimatedPrice,
			HasQuoteItems:  s.HasQuoteItems,
		}
	}
	return resp
}

// ReservationResponse резервация для админки
type ReservationResponse struct {
	ID              int64                    `json:"id"`
	ClientName      string                   `json:"clientName"`
	ClientEmail     string                   `json:"clientEmail"`
	ClientPhone     string                   `json:"clientPhone"`
	Address         string                   `json:"address"`
	City            string                   `json:"city"`
	Postcode        string                   `json:"postcode"`
	Coordinates     *[2]float64              `json:"coordinates,omitempty"`
	ServiceType     string                   `json:"serviceType"`
	ServiceDetails  domain.ServiceDetails    `json:"serviceDetails"`
	ScheduledDate   string                   `json:"scheduledDate"`
	ScheduledTime   string                   `json:"scheduledTime"`
	Period          domain.Period            `json:"period"`
	DurationMinutes int                      `json:"durationMinutes"`
	EstimatedPrice  float64                  `json:"estimatedPrice"`
	Status          domain.ReservationStatus `json:"status"`
	PaymentStatus   domain.PaymentStatus     `json:"paymentStatus"`
	Notes           *string                  `json:"notes,omitempty"`
	InternalNotes   *string                  `json:"internalNotes,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// FromReservation конвертирует резервацию в HTTP ответ
func FromReservation(r *domain.Reservation) *ReservationResponse {
	period, _ := r.Period()
	return &ReservationResponse{
		ID:              r.ID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		Address:         r.Address,
		City:            r.City,
		Postcode:        r.Postcode,
		Coordinates:     r.Coordinates,
		ServiceType:     r.ServiceType,
		ServiceDetails:  r.ServiceDetails,
		ScheduledDate:   r.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:   r.ScheduledTime,
		Period:          period,
		DurationMinutes: r.DurationMinutes,
		EstimatedPrice:  r.EstimatedPrice,
		Status:          r.Status,
		PaymentStatus:   r.PaymentStatus,
		Notes:           r.Notes,
		InternalNotes:   r.InternalNotes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
