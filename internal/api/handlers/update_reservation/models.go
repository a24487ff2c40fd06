package update_reservation

import (
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/pkg/ptr"
)

// UpdateReservationRequest HTTP request model, все поля опциональны
type UpdateReservationRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	InternalNotes *string `json:"internalNotes,omitempty"`
}

// ToDomain конвертирует запрос в частичное обновление
func (r UpdateReservationRequest) ToDomain() domain.ReservationUpdate {
	var upd domain.ReservationUpdate
	if r.Status != nil {
		upd.Status = ptr.Ptr(domain.ReservationStatus(*r.Status))
	}
	if r.PaymentStatus != nil {
		upd.PaymentStatus = ptr.Ptr(domain.PaymentStatus(*r.PaymentStatus))
	}
	upd.InternalNotes = r.InternalNotes
	return upd
}
