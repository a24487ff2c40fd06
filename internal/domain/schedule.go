package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod returned for values that are neither morning nor afternoon
var ErrInvalidPeriod = errors.New("domain: invalid period")

// Period half-day booking unit
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// Periods all bookable periods in display order
var Periods = []Period{PeriodMorning, PeriodAfternoon}

// ParsePeriod parses the canonical period representation
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodMorning:
		return PeriodMorning, nil
	case PeriodAfternoon:
		return PeriodAfternoon, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// IsValid reports whether p is a known period
func (p Period) IsValid() bool {
	return p == PeriodMorning || p == PeriodAfternoon
}

// Index position in display order, -1 for unknown values
func (p Period) Index() int {
	for i, period := range Periods {
		if period == p {
			return i
		}
	}
	return -1
}

// ClockTime fixed start time stored in reservations.scheduled_time
func (p Period) ClockTime() string {
	if p == PeriodAfternoon {
		return AfternoonClockTime
	}
	return MorningClockTime
}

// PeriodFromClockTime derives a period from a stored time string.
// Accepted encodings: "09:00", "09:00:00", "9h00"/"14h30", and period words
// ("morning", "matin", "afternoon", "après-midi"). Hours before noon are morning.
// ok is false when the string could not be interpreted; the period is then morning.
func PeriodFromClockTime(raw string) (period Period, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))

	switch s {
	case "morning", "matin", "am":
		return PeriodMorning, true
	case "afternoon", "après-midi", "apres-midi", "aprem", "pm":
		return PeriodAfternoon, true
	}

	hour, parsed := parseHour(s)
	if !parsed {
		return PeriodMorning, false
	}
	if hour < NoonHour {
		return PeriodMorning, true
	}
	return PeriodAfternoon, true
}

func parseHour(s string) (int, bool) {
	sep := strings.IndexAny(s, ":h")
	if sep <= 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(s[:sep])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	rest := s[sep+1:]
	if rest != "" {
		minutes := rest
		if i := strings.IndexByte(rest, ':'); i >= 0 {
			minutes = rest[:i]
		}
		if m, err := strconv.Atoi(minutes); err != nil || m < 0 || m > 59 {
			return 0, false
		}
	}
	return hour, true
}

// ScheduleSlot a (date, period) pair selected in the wizard
type ScheduleSlot struct {
	Date   time.Time
	Period Period
}

// Key identity of the slot
func (s ScheduleSlot) Key() SlotKey {
	return NewSlotKey(s.Date, s.Period)
}

// SlotKey comparable slot identity, date in DateFormat
type SlotKey struct {
	Date   string
	Period Period
}

// NewSlotKey builds a key from a calendar date
func NewSlotKey(date time.Time, period Period) SlotKey {
	return SlotKey{Date: date.Format(DateFormat), Period: period}
}

// AdminScheduleSlot explicit availability override for one slot.
// A missing row means the slot is available.
type AdminScheduleSlot struct {
	ID          int64
	Date        time.Time
	Period      Period
	IsAvailable bool
	UpdatedAt   time.Time
}

// Key identity of the override
func (s AdminScheduleSlot) Key() SlotKey {
	return NewSlotKey(s.Date, s.Period)
}

// DateOnly truncates t to a calendar date in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSelectableDate reports whether a customer may pick the date:
// never today or earlier, never on Sunday.
func IsSelectableDate(date, now time.Time) bool {
	day := DateOnly(date)
	today := DateOnly(now.In(date.Location()))
	if !day.After(today) {
		return false
	}
	return day.Weekday() != time.Sunday
}
