package wizard_submit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/api/handlers"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	wizardService "github.com/m04kA/CleanHome-BookingService/internal/service/wizard"
	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
	submitReservation "github.com/m04kA/CleanHome-BookingService/internal/usecase/submit_reservation"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
)

type fakeWizard struct {
	err     error
	contact models.Contact
	notes   *string
}

func (f *fakeWizard) Submit(_ context.Context, sessionID string, contact models.Contact, notes *string) (*models.State, error) {
	f.contact = contact
	f.notes = notes
	if f.err != nil {
		return nil, f.err
	}
	session := domain.NewWizardSession(sessionID)
	session.Step = domain.StepSuccess
	session.Success = &domain.SuccessRecap{ReservationID: 42, Address: "Rue du Lac 1, Lausanne"}
	return &models.State{Session: session, Cart: domain.NewCart()}, nil
}

func serve(t *testing.T, svc WizardService, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/carts/{sessionId}/wizard/submit", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/carts/s1/wizard/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"name":"Anne","email":"anne@example.ch","phone":"0791234567","notes":"code 1234"}`

func TestHandle_Created(t *testing.T) {
	svc := &fakeWizard{}
	rec := serve(t, svc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Anne", svc.contact.Name)
	require.NotNil(t, svc.notes)
	assert.Equal(t, "code 1234", *svc.notes)

	var resp handlers.WizardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StepSuccess, resp.Step)
	require.NotNil(t, resp.Success)
	assert.Equal(t, int64(42), resp.Success.ReservationID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"in progress", wizardService.ErrSubmitInProgress, http.StatusConflict},
		{"already submitted", wizardService.ErrAlreadySubmitted, http.StatusConflict},
		{"invalid contact", fmt.Errorf("%w: email", wizardService.ErrInvalidContact), http.StatusUnprocessableEntity},
		{"incomplete step", wizardService.ErrIncompleteStep, http.StatusUnprocessableEntity},
		{"empty cart", submitReservation.ErrMissingItems, http.StatusUnprocessableEntity},
		{"no slot", submitReservation.ErrMissingSlot, http.StatusUnprocessableEntity},
		{"slot taken", submitReservation.ErrSlotTaken, http.StatusConflict},
		{"slot closed", submitReservation.ErrSlotUnavailable, http.StatusConflict},
		{"internal", submitReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeWizard{err: tt.err}, validBody)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandle_RejectsUnknownFields(t *testing.T) {
	rec := serve(t, &fakeWizard{}, `{"name":"Anne","admin":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
