package wizard_step

// StepRequest HTTP request model
type StepRequest struct {
	Step string `json:"step"`
}
