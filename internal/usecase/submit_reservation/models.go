package submit_reservation

import (
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// Request данные для создания резервации из корзины
type Request struct {
	Cart  *domain.Cart
	Slot  *domain.ScheduleSlot
	Notes *string
}

// Response созданная резервация
type Response struct {
	ReservationID  int64
	ServiceNames   []string
	Address        string
	Slot           domain.ScheduleSlot
	ScheduledTime  string
	EstimatedPrice float64
	HasQuoteItems  bool
	Status         domain.ReservationStatus
	CreatedAt      time.Time
}
