package get_schedule

import (
	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule/models"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Slots        []handlers.ScheduleSlotResponse `json:"slots"`
	PendingCount int                             `json:"pendingCount"`
}

// FromViews конвертирует сетку редактора в HTTP response
func FromViews(views []models.SlotView, pending *models.PendingChanges) *ScheduleResponse {
	slots := make([]handlers.ScheduleSlotResponse, len(views))
	for i, v := range views {
		slots[i] = handlers.ScheduleSlotResponse{
			Date:        v.Date.Format(domain.DateFormat),
			Period:      v.Period,
			IsAvailable: v.IsAvailable,
			Overridden:  v.Overridden,
			Pending:     v.Pending,
		}
	}
	return &ScheduleResponse{Slots: slots, PendingCount: pending.Count}
}
