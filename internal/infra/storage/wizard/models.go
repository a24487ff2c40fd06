package wizard

import (
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

type slotRecord struct {
	Date   string `json:"date"`
	Period string `json:"period"`
}

type successRecord struct {
	ReservationID  int64      `json:"reservationId"`
	Address        string     `json:"address"`
	Services       []string   `json:"services"`
	Slot           slotRecord `json:"slot"`
	EstimatedPrice float64    `json:"estimatedPrice"`
	HasQuoteItems  bool       `json:"hasQuoteItems"`
}

type sessionRecord struct {
	SessionID string         `json:"sessionId"`
	Step      string         `json:"step"`
	Slot      *slotRecord    `json:"slot,omitempty"`
	Success   *successRecord `json:"success,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func toSlotRecord(s domain.ScheduleSlot) slotRecord {
	return slotRecord{Date: s.Date.Format(domain.DateFormat), Period: string(s.Period)}
}

func (r slotRecord) toDomain(loc *time.Location) (domain.ScheduleSlot, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	period, err := domain.ParsePeriod(r.Period)
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	return domain.ScheduleSlot{Date: date, Period: period}, nil
}

func toRecord(s *domain.WizardSession) sessionRecord {
	rec := sessionRecord{
		SessionID: s.SessionID,
		Step:      string(s.Step),
		UpdatedAt: s.UpdatedAt,
	}
	if s.Slot != nil {
		slot := toSlotRecord(*s.Slot)
		rec.Slot = &slot
	}
	if s.Success != nil {
		rec.Success = &successRecord{
			ReservationID:  s.Success.ReservationID,
			Address:        s.Success.Address,
			Services:       s.Success.Services,
			Slot:           toSlotRecord(s.Success.Slot),
			EstimatedPrice: s.Success.EstimatedPrice,
			HasQuoteItems:  s.Success.HasQuoteItems,
		}
	}
	return rec
}

func (r sessionRecord) toDomain(loc *time.Location) (*domain.WizardSession, error) {
	session := &domain.WizardSession{
		SessionID: r.SessionID,
		Step:      domain.Step(r.Step),
		UpdatedAt: r.UpdatedAt,
	}
	if r.Slot != nil {
		slot, err := r.Slot.toDomain(loc)
		if err != nil {
			return nil, err
		}
		session.Slot = &slot
	}
	if r.Success != nil {
		slot, err := r.Success.Slot.toDomain(loc)
		if err != nil {
			return nil, err
		}
		session.Success = &domain.SuccessRecap{
			ReservationID:  r.Success.ReservationID,
			Address:        r.Success.Address,
			Services:       r.Success.Services,
			Slot:           slot,
			EstimatedPrice: r.Success.EstimatedPrice,
			HasQuoteItems:  r.Success.HasQuoteItems,
		}
	}
	return session, nil
}
