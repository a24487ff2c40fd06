package update_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/reservations"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
	"github.com/m04kA/CleanHome-BookingService/pkg/ptr"
)

type fakeReservations struct {
	err   error
	id    int64
	upd   domain.ReservationUpdate
	calls int
}

func (f *fakeReservations) Update(_ context.Context, id int64, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	f.calls++
	f.id, f.upd = id, upd
	if f.err != nil {
		return nil, f.err
	}
	res := &domain.Reservation{
		ID:              id,
		ClientName:      "Anne",
		ScheduledDate:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		ScheduledPeriod: ptr.Ptr(domain.PeriodMorning),
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		InternalNotes:   upd.InternalNotes,
	}
	if upd.Status != nil {
		res.Status = *upd.Status
	}
	if upd.PaymentStatus != nil {
		res.PaymentStatus = *upd.PaymentStatus
	}
	return res, nil
}

func serve(t *testing.T, svc ReservationService, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/admin/reservations/{id}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/admin/reservations/"+id, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &fakeReservations{}
	rec := serve(t, svc, "12", `{"status":"confirmed","internalNotes":"clé chez la voisine"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), svc.id)
	require.NotNil(t, svc.upd.Status)
	assert.Equal(t, domain.StatusConfirmed, *svc.upd.Status)
	assert.Nil(t, svc.upd.PaymentStatus)
	require.NotNil(t, svc.upd.InternalNotes)

	var resp handlers.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, domain.PaymentPending, resp.PaymentStatus)
	assert.Equal(t, domain.PeriodMorning, resp.Period)
}

func TestHandle_Errors(t *testing.T) {
	const valid = `{"paymentStatus":"paid"}`
	tests := []struct {
		name      string
		id        string
		body      string
		err       error
		status    int
		wantCalls int
	}{
		{"non numeric id", "abc", valid, nil, http.StatusBadRequest, 0},
		{"malformed body", "12", `{"status":`, nil, http.StatusBadRequest, 0},
		{"unknown field", "12", `{"price":10}`, nil, http.StatusBadRequest, 0},
		{"invalid status", "12", `{"status":"lost"}`, fmt.Errorf("%w: status", reservations.ErrInvalidInput), http.StatusUnprocessableEntity, 1},
		{"not found", "99", valid, reservations.ErrReservationNotFound, http.StatusNotFound, 1},
		{"restore onto taken slot", "12", `{"status":"pending"}`, reservations.ErrSlotTaken, http.StatusConflict, 1},
		{"storage failure", "12", valid, errors.New("db down"), http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReservations{err: tt.err}
			rec := serve(t, svc, tt.id, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}
