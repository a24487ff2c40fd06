package wizard_finish

// FinishRequest HTTP request model
type FinishRequest struct {
	Action string `json:"action"`
}
