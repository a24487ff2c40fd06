package eventbus

import "time"

// ReservationCreatedEvent событие о новой резервации
type ReservationCreatedEvent struct {
	ReservationID  int64     `json:"reservationId"`
	ClientName     string    `json:"clientName"`
	ClientEmail    string    `json:"clientEmail"`
	ClientPhone    string    `json:"clientPhone"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Services       []string  `json:"services"`
	ScheduledDate  string    `json:"scheduledDate"`
	ScheduledTime  string    `json:"scheduledTime"`
	Period         string    `json:"period"`
	EstimatedPrice float64   `json:"estimatedPrice"`
	CreatedAt      time.Time `json:"createdAt"`
}
