package handlers

import (
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule/models"
)

// PendingResponse несохраненные изменения редактора
type PendingResponse struct {
	Slots []ScheduleSlotResponse `json:"slots"`
	Count int                    `json:"count"`
}

// ScheduleSlotResponse слот в редакторе расписания
type ScheduleSlotResponse struct {
	Date        string        `json:"date"`
	Period      domain.Period `json:"period"`
	IsAvailable bool          `json:"isAvailable"`
	Overridden  bool          `json:"overridden,omitempty"`
	Pending     bool          `json:"pending,omitempty"`
}

// FromPending конвертирует изменения редактора в HTTP ответ
func FromPending(changes *models.PendingChanges) *PendingResponse {
	slots := make([]ScheduleSlotResponse, len(changes.Slots))
	for i, s := range changes.Slots {
		slots[i] = ScheduleSlotResponse{
			Date:        s.Date.Format(domain.DateFormat),
			Period:      s.Period,
			IsAvailable: s.IsAvailable,
			Pending:     true,
		}
	}
	return &PendingResponse{Slots: slots, Count: changes.Count}
}
