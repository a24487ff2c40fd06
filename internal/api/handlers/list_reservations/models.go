package list_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/pkg/ptr"
)

// ReservationsResponse HTTP response model
type ReservationsResponse struct {
	Reservations []*handlers.ReservationResponse `json:"reservations"`
	Count        int                             `json:"count"`
}

// FromReservations конвертирует список в HTTP response
func FromReservations(list []*domain.Reservation) *ReservationsResponse {
	items := make([]*handlers.ReservationResponse, len(list))
	for i, r := range list {
		items[i] = handlers.FromReservation(r)
	}
	return &ReservationsResponse{Reservations: items, Count: len(items)}
}

// ToFilter формирует фильтр из query параметров: status, from, to, search, limit, offset
func ToFilter(query url.Values, loc *time.Location) (domain.ReservationFilter, error) {
	var filter domain.ReservationFilter

	if status := query.Get("status"); status != "" {
		filter.Status = ptr.Ptr(domain.ReservationStatus(status))
	}
	if from := query.Get("from"); from != "" {
		date, err := handlers.ParseDate(from, loc)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &date
	}
	if to := query.Get("to"); to != "" {
		date, err := handlers.ParseDate(to, loc)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &date
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}
	if limit := query.Get("limit"); limit != "" {
		v, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.Limit = v
	}
	if offset := query.Get("offset"); offset != "" {
		v, err := strconv.ParseUint(offset, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.Offset = v
	}

	return filter, nil
}
