package submit_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// validateRequest проверки до обращения к БД
func validateRequest(req *Request, now time.Time) error {
	if req == nil || req.Cart == nil || req.Cart.IsEmpty() {
		return ErrMissingItems
	}
	if !req.Cart.HasAddress() {
		return ErrMissingAddress
	}
	if !req.Cart.HasContactInfo() {
		return ErrMissingContact
	}
	if req.Slot == nil {
		return ErrMissingSlot
	}
	if !req.Slot.Period.IsValid() {
		return fmt.Errorf("%w: period %q", ErrInvalidInput, req.Slot.Period)
	}
	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if !domain.IsSelectableDate(req.Slot.Date, now) {
		return ErrDateNotSelectable
	}
	return nil
}
