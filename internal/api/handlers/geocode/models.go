package geocode

import "github.com/m04kA/CleanHome-BookingService/internal/domain"

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	Suggestions []domain.AddressRef `json:"suggestions"`
}
