package models

import (
	"time"
)

// DayAvailability доступность периодов одного дня
type DayAvailability struct {
	Date       time.Time
	Selectable bool // не сегодня, не прошлое, не воскресенье
	Morning    bool
	Afternoon  bool
}

// HasFreeSlot есть ли хотя бы один свободный период
func (d DayAvailability) HasFreeSlot() bool {
	return d.Selectable && (d.Morning || d.Afternoon)
}
