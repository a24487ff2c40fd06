package toggle_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/api/middleware"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule/models"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
)

type fakeSchedule struct {
	date   time.Time
	period domain.Period
}

func (f *fakeSchedule) Toggle(_ context.Context, _ string, date time.Time, period domain.Period) (*models.PendingChanges, error) {
	f.date, f.period = date, period
	slot := domain.AdminScheduleSlot{Date: date, Period: period, IsAvailable: false}
	return &models.PendingChanges{Slots: []domain.AdminScheduleSlot{slot}, Count: 1}, nil
}

func TestHandle(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	svc := &fakeSchedule{}
	h := NewHandler(svc, loc, logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/admin/schedule/toggle",
		strings.NewReader(`{"date":"2024-06-04","period":"afternoon"}`))
	req = req.WithContext(middleware.WithEditor(req.Context(), "marie"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, time.Date(2024, 6, 4, 0, 0, 0, 0, loc).Equal(svc.date))
	assert.Equal(t, domain.PeriodAfternoon, svc.period)

	var resp handlers.PendingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2024-06-04", resp.Slots[0].Date)
	assert.False(t, resp.Slots[0].IsAvailable)
	assert.True(t, resp.Slots[0].Pending)
}

func TestHandle_InvalidSlot(t *testing.T) {
	h := NewHandler(&fakeSchedule{}, time.UTC, logger.NewNop())

	for _, body := range []string{`{"date":"2024-06-04","period":"evening"}`, `{"date":"june","period":"morning"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/admin/schedule/toggle", strings.NewReader(body))
		req = req.WithContext(middleware.WithEditor(req.Context(), "marie"))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
