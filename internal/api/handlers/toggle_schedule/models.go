package toggle_schedule

// ToggleRequest HTTP request model
type ToggleRequest struct {
	Date   string `json:"date"`
	Period string `json:"period"`
}
