package domain

import (
	"time"
)

// ReservationStatus lifecycle of a reservation, changed only by staff
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus payment state tracked by staff
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// ServiceDetail one cart item frozen into the reservation
type ServiceDetail struct {
	ServiceID   string         `json:"serviceId"`
	ServiceName string         `json:"serviceName"`
	FormData    map[string]any `json:"formData"`
	Price       float64        `json:"price"`
	QuoteOnly   bool           `json:"quoteOnly,omitempty"`
}

// ServiceDetails JSON stored in reservations.service_details
type ServiceDetails struct {
	Services []ServiceDetail `json:"services"`
}

// Reservation authoritative booking row
type Reservation struct {
	ID int64

	ClientName  string
	ClientEmail string
	ClientPhone string

	Address     string
	City        string
	Postcode    string
	Coordinates *[2]float64 // [lon, lat]

	ServiceType    string
	ServiceDetails ServiceDetails

	ScheduledDate   time.Time
	ScheduledTime   string
	ScheduledPeriod *Period // nil for legacy rows, see PeriodFromClockTime
	DurationMinutes int
	EstimatedPrice  float64

	Status        ReservationStatus
	PaymentStatus PaymentStatus
	Notes         *string
	InternalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation holds its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// Period resolves the half-day period of the reservation
func (r *Reservation) Period() (Period, bool) {
	if r.ScheduledPeriod != nil && r.ScheduledPeriod.IsValid() {
		return *r.ScheduledPeriod, true
	}
	return PeriodFromClockTime(r.ScheduledTime)
}

// SlotKey slot held by the reservation
func (r *Reservation) SlotKey() SlotKey {
	period, _ := r.Period()
	return NewSlotKey(r.ScheduledDate, period)
}

// ReservationFilter admin listing filter
type ReservationFilter struct {
	Status    *ReservationStatus
	StartDate *time.Time
	EndDate   *time.Time
	Search    *string // name, email, phone or city
	Limit     uint64
	Offset    uint64
}

// ReservationUpdate partial update applied by staff
type ReservationUpdate struct {
	Status        *ReservationStatus
	PaymentStatus *PaymentStatus
	InternalNotes *string
}

// IsEmpty reports whether nothing is to be updated
func (u ReservationUpdate) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.InternalNotes == nil
}
