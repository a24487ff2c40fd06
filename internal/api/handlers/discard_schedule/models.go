package discard_schedule

// DiscardResponse HTTP response model
type DiscardResponse struct {
	Discarded int `json:"discarded"`
}
