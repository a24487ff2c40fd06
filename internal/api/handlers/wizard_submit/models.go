package wizard_submit

import "github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"

// SubmitRequest HTTP request model
type SubmitRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Notes *string `json:"notes,omitempty"`
}

// ToContact контакты для сервиса мастера
func (r SubmitRequest) ToContact() models.Contact {
	return models.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone}
}
