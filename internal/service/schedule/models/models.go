package models

import (
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// SlotView состояние слота в редакторе
type SlotView struct {
	Date        time.Time
	Period      domain.Period
	IsAvailable bool
	// Overridden в БД есть явная настройка
	Overridden bool
	// Pending значение еще не сохранено
	Pending bool
}

// PendingChanges несохраненные изменения редактора
type PendingChanges struct {
	Slots []domain.AdminScheduleSlot
	Count int
}
