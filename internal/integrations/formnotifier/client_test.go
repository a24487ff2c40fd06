package formnotifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "reservation", r.PostForm.Get("form-name"))
		assert.Equal(t, "Anna", r.PostForm.Get("name"))
		assert.Contains(t, r.PostForm.Get("message"), "Nettoyage de canapé")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "reservation", time.Second)
	err := client.Send(context.Background(), Notification{
		Name:    "Anna",
		Email:   "anna@example.ch",
		Phone:   "0791234567",
		Summary: "Services: Nettoyage de canapé",
	})
	require.NoError(t, err)
}

func TestSend_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "reservation", time.Second).Send(context.Background(), Notification{})
	assert.ErrorIs(t, err, ErrInvalidResponse)

	err = NewClient("", "reservation", time.Second).Send(context.Background(), Notification{})
	assert.ErrorIs(t, err, ErrDisabled)
}
