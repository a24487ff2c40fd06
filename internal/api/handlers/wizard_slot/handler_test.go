package wizard_slot

import (
	"context"
	"encoding/json"
	"errors"
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
	wizardService "github.com/m04kA/CleanHome-BookingService/internal/service/wizard"
	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
)

var cet = time.FixedZone("CET", 3600)

type fakeWizard struct {
	err    error
	date   time.Time
	period domain.Period
	calls  int
}

func (f *fakeWizard) SelectSlot(_ context.Context, sessionID string, date time.Time, period domain.Period) (*models.State, error) {
	f.calls++
	f.date, f.period = date, period
	if f.err != nil {
		return nil, f.err
	}
	session := domain.NewWizardSession(sessionID)
	session.Step = domain.StepSchedule
	session.Slot = &domain.ScheduleSlot{Date: date, Period: period}
	return &models.State{Session: session, Cart: domain.NewCart()}, nil
}

func serve(t *testing.T, svc WizardService, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/carts/{sessionId}/wizard/slot", NewHandler(svc, cet, logger.NewNop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/carts/s1/wizard/slot", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeWizard{}
	rec := serve(t, svc, `{"date":"2024-06-05","period":"afternoon"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, time.Date(2024, 6, 5, 0, 0, 0, 0, cet).Equal(svc.date))
	assert.Equal(t, domain.PeriodAfternoon, svc.period)

	var resp handlers.WizardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "2024-06-05", resp.Slot.Date)
	assert.Equal(t, domain.PeriodAfternoon, resp.Slot.Period)
}

func TestHandle_Errors(t *testing.T) {
	const valid = `{"date":"2024-06-05","period":"morning"}`
	tests := []struct {
		name      string
		body      string
		err       error
		status    int
		wantCalls int
	}{
		{"malformed body", `{"date":`, nil, http.StatusBadRequest, 0},
		{"bad date", `{"date":"05.06.2024","period":"morning"}`, nil, http.StatusBadRequest, 0},
		{"bad period", `{"date":"2024-06-05","period":"evening"}`, nil, http.StatusBadRequest, 0},
		{"sunday or past", valid, wizardService.ErrDateNotSelectable, http.StatusUnprocessableEntity, 1},
		{"slot taken", valid, wizardService.ErrSlotUnavailable, http.StatusConflict, 1},
		{"already submitted", valid, wizardService.ErrAlreadySubmitted, http.StatusConflict, 1},
		{"invalid input", valid, wizardService.ErrInvalidInput, http.StatusBadRequest, 1},
		{"storage failure", valid, errors.New("redis down"), http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeWizard{err: tt.err}
			rec := serve(t, svc, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}
