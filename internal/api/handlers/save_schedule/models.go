package save_schedule

// SaveResponse HTTP response model
type SaveResponse struct {
	Saved int `json:"saved"`
}
