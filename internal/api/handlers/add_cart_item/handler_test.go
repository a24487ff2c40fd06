package add_cart_item

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
	"github.com/m04kA/CleanHome-BookingService/internal/catalog"
	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	cartService "github.com/m04kA/CleanHome-BookingService/internal/service/cart"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
)

type fakeCart struct {
	err       error
	price     float64
	serviceID string
}

func (f *fakeCart) AddItem(_ context.Context, sessionID, serviceID string, formData map[string]any) (*domain.Cart, *domain.CartItem, error) {
	f.serviceID = serviceID
	if f.err != nil {
		return nil, nil, f.err
	}
	cart := domain.NewCart()
	cart.SessionID = sessionID
	item := cart.AddItem(domain.ServiceRef{ID: serviceID, Name: serviceID}, formData, f.price, time.Now())
	return cart, &item, nil
}

func serve(t *testing.T, svc CartService, session, body string) *httptest.ResponseRecorder {
	t.Helper()
	services, err := catalog.NewDefault()
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/carts/{sessionId}/items", NewHandler(svc, services, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/carts/"+session+"/items", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeCart{price: 140}
	rec := serve(t, svc, "s1", `{"serviceId":"sofa","formData":{"seats":"3"}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "sofa", svc.serviceID)

	var resp AddItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OptionsComplete)
	assert.Empty(t, resp.OptionsMessage)
	require.NotNil(t, resp.Item)
	assert.Equal(t, 140.0, resp.Item.EstimatedPrice)
	require.NotNil(t, resp.Cart)
	assert.Len(t, resp.Cart.Items, 1)
}

func TestHandle_IncompleteOptionsStillAdded(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing options", `{"serviceId":"sofa"}`},
		{"unknown option value", `{"serviceId":"sofa","formData":{"seats":"9"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeCart{price: domain.DefaultEstimatedPrice}, "s1", tt.body)
			require.Equal(t, http.StatusCreated, rec.Code)

			var resp AddItemResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.OptionsComplete)
			assert.NotEmpty(t, resp.OptionsMessage)
			require.NotNil(t, resp.Item)
			assert.Equal(t, domain.DefaultEstimatedPrice, resp.Item.EstimatedPrice)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"malformed body", `{"serviceId":`, nil, http.StatusBadRequest},
		{"missing service id", `{"formData":{}}`, nil, http.StatusBadRequest},
		{"invalid session", `{"serviceId":"sofa"}`, cartService.ErrInvalidSession, http.StatusBadRequest},
		{"unknown service", `{"serviceId":"spaceship"}`, cartService.ErrServiceNotFound, http.StatusNotFound},
		{"storage failure", `{"serviceId":"sofa"}`, errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeCart{err: tt.err}, "s1", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}
