package domain

import (
	"errors"
	"time"
)

// ErrInvalidStep returned for unknown wizard step names
var ErrInvalidStep = errors.New("domain: invalid wizard step")

// Step wizard step
type Step string

const (
	StepServices Step = "services"
	StepAddress  Step = "address"
	StepSchedule Step = "schedule"
	StepContact  Step = "contact"
	// StepSuccess terminal overlay shown after submission
	StepSuccess Step = "success"
)

// Steps navigable steps in order
var Steps = []Step{StepServices, StepAddress, StepSchedule, StepContact}

// ParseStep parses a navigable step name
func ParseStep(s string) (Step, error) {
	for _, step := range Steps {
		if string(step) == s {
			return step, nil
		}
	}
	return "", ErrInvalidStep
}

// Index position of the step, -1 for success and unknown values
func (s Step) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// SuccessRecap summary shown on the success overlay
type SuccessRecap struct {
	ReservationID  int64
	Address        string
	Services       []string
	Slot           ScheduleSlot
	EstimatedPrice float64
	HasQuoteItems  bool
}

// WizardSession navigation state stored next to the cart
type WizardSession struct {
	SessionID string
	Step      Step
	Slot      *ScheduleSlot
	Success   *SuccessRecap
	UpdatedAt time.Time
}

// NewWizardSession starts a session at the first step
func NewWizardSession(sessionID string) *WizardSession {
	return &WizardSession{
		SessionID: sessionID,
		Step:      StepServices,
	}
}

// HasSlot reports whether a slot is held
func (w *WizardSession) HasSlot() bool {
	return w.Slot != nil
}

// CanProceedToStep step completeness guard:
//
//	services  always
//	address   cart has items
//	schedule  address set and cart has items
//	contact   address set, cart has items and a slot is selected
func CanProceedToStep(target Step, cart *Cart, slot *ScheduleSlot) bool {
	hasItems := cart != nil && !cart.IsEmpty()
	hasAddress := cart != nil && cart.HasAddress()

	switch target {
	case StepServices:
		return true
	case StepAddress:
		return hasItems
	case StepSchedule:
		return hasItems && hasAddress
	case StepContact:
		return hasItems && hasAddress && slot != nil
	default:
		return false
	}
}
