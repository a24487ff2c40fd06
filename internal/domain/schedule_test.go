package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodFromClockTime(t *testing.T) {
	cases := []struct {
		raw    string
		period Period
		ok     bool
	}{
		{"09:00", PeriodMorning, true},
		{"14:00", PeriodAfternoon, true},
		{"09:00:00", PeriodMorning, true},
		{"14:00:00", PeriodAfternoon, true},
		{"11:59", PeriodMorning, true},
		{"12:00", PeriodAfternoon, true},
		{"9h00", PeriodMorning, true},
		{"14h30", PeriodAfternoon, true},
		{"8h", PeriodMorning, true},
		{"morning", PeriodMorning, true},
		{"Matin", PeriodMorning, true},
		{"afternoon", PeriodAfternoon, true},
		{"après-midi", PeriodAfternoon, true},
		{"", PeriodMorning, false},
		{"soon", PeriodMorning, false},
		{"25:00", PeriodMorning, false},
		{"10:75", PeriodMorning, false},
	}

	for _, tt := range cases {
		period, ok := PeriodFromClockTime(tt.raw)
		assert.Equal(t, tt.period, period, "raw=%q", tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod(" Afternoon ")
	assert.NoError(t, err)
	assert.Equal(t, PeriodAfternoon, p)
	assert.Equal(t, AfternoonClockTime, p.ClockTime())
	assert.Equal(t, MorningClockTime, PeriodMorning.ClockTime())

	_, err = ParsePeriod("evening")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestIsSelectableDate(t *testing.T) {
	loc := time.UTC
	// вторник
	now := time.Date(2025, 3, 4, 8, 30, 0, 0, loc)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", time.Date(2025, 3, 4, 0, 0, 0, 0, loc), false},
		{"yesterday", time.Date(2025, 3, 3, 0, 0, 0, 0, loc), false},
		{"tomorrow", time.Date(2025, 3, 5, 0, 0, 0, 0, loc), true},
		{"saturday", time.Date(2025, 3, 8, 0, 0, 0, 0, loc), true},
		{"sunday", time.Date(2025, 3, 9, 0, 0, 0, 0, loc), false},
		{"next monday", time.Date(2025, 3, 10, 0, 0, 0, 0, loc), true},
	}

	for _, tt := range cases {
		assert.Equal(t, tt.want, IsSelectableDate(tt.date, now), tt.name)
	}
}

func TestReservation_Period(t *testing.T) {
	afternoon := PeriodAfternoon
	r := &Reservation{ScheduledTime: "09:00", ScheduledPeriod: &afternoon}
	p, ok := r.Period()
	assert.True(t, ok)
	assert.Equal(t, PeriodAfternoon, p)

	legacy := &Reservation{ScheduledTime: "14h30"}
	p, ok = legacy.Period()
	assert.True(t, ok)
	assert.Equal(t, PeriodAfternoon, p)
}
