package wizard_step

import (
	"context"
	"encoding/json"
	"errors"
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
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
)

type fakeWizard struct {
	err    error
	target domain.Step
	calls  int
}

func (f *fakeWizard) GoToStep(_ context.Context, sessionID string, target domain.Step) (*models.State, error) {
	f.calls++
	f.target = target
	if f.err != nil {
		return nil, f.err
	}
	session := domain.NewWizardSession(sessionID)
	session.Step = target
	return &models.State{
		Session:    session,
		Cart:       domain.NewCart(),
		CanProceed: map[domain.Step]bool{domain.StepServices: true},
	}, nil
}

func serve(t *testing.T, svc WizardService, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/carts/{sessionId}/wizard/step", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/carts/s1/wizard/step", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeWizard{}
	rec := serve(t, svc, `{"step":"address"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepAddress, svc.target)

	var resp handlers.WizardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, domain.StepAddress, resp.Step)
	assert.True(t, resp.CanProceed[domain.StepServices])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		err       error
		status    int
		wantCalls int
	}{
		{"malformed body", `{"step":`, nil, http.StatusBadRequest, 0},
		{"unknown step", `{"step":"payment"}`, nil, http.StatusBadRequest, 0},
		{"incomplete step", `{"step":"schedule"}`, wizardService.ErrIncompleteStep, http.StatusUnprocessableEntity, 1},
		{"skipped step", `{"step":"contact"}`, wizardService.ErrStepSkipped, http.StatusUnprocessableEntity, 1},
		{"already submitted", `{"step":"services"}`, wizardService.ErrAlreadySubmitted, http.StatusConflict, 1},
		{"invalid input", `{"step":"services"}`, wizardService.ErrInvalidInput, http.StatusBadRequest, 1},
		{"storage failure", `{"step":"address"}`, errors.New("redis down"), http.StatusInternalServerError, 1},
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
