package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Fixed clock times stored for each half-day period
const (
	MorningClockTime   = "09:00"
	AfternoonClockTime = "14:00"
	// NoonHour periods starting at or after this hour are afternoon
	NoonHour = 12
)

// Cart and pricing
const (
	// DefaultEstimatedPrice used when a service has no pricing rule
	DefaultEstimatedPrice = 100.0
	// QuotePrice marks an item as "on quote"
	QuotePrice = 0.0
	// Currency all prices are expressed in
	Currency = "CHF"
)

// Business validation constants
const (
	MinNameLength          = 1
	MinPhoneLength         = 10
	MaxNotesLength         = 1000
	MaxInternalNotesLength = 2000
	MaxSelectableDays      = 120
)

// InactiveStatuses statuses that do not hold a slot
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses statuses that hold a slot
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
