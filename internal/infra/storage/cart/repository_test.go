package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

func newRepo(t *testing.T) (*Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRepository(client, time.Hour), mr
}

func TestSaveAndGet(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()
	now := time.Now()

	cart := domain.NewCart()
	cart.AddItem(domain.ServiceRef{ID: "sofa", Name: "Nettoyage de canapé"}, map[string]any{"seats": "3"}, 140, now)
	cart.AddItem(domain.ServiceRef{ID: "office", Name: "Nettoyage de bureaux", QuoteOnly: true}, nil, 0, now)
	cart.SetAddress(domain.AddressRef{ID: "address.1", City: "Lausanne"}, now)

	require.NoError(t, repo.Save(ctx, cart))
	assert.True(t, mr.Exists("cart:"+cart.SessionID))
	assert.Equal(t, time.Hour, mr.TTL("cart:"+cart.SessionID))

	loaded, err := repo.Get(ctx, cart.SessionID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, loaded.ID)
	assert.Len(t, loaded.Items, 2)
	assert.Equal(t, 140.0, loaded.TotalPrice)
	assert.Equal(t, "Lausanne", loaded.Address.City)
}

func TestSave_EmptyCartIsNotStored(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	cart := domain.NewCart()
	item := cart.AddItem(domain.ServiceRef{ID: "sofa"}, nil, 140, time.Now())
	require.NoError(t, repo.Save(ctx, cart))
	require.True(t, mr.Exists("cart:"+cart.SessionID))

	cart.RemoveItem(item.ID, time.Now())
	require.NoError(t, repo.Save(ctx, cart))
	assert.False(t, mr.Exists("cart:"+cart.SessionID))

	_, err := repo.Get(ctx, cart.SessionID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestGet_Corrupted(t *testing.T) {
	repo, mr := newRepo(t)
	require.NoError(t, mr.Set("cart:broken", "{not json"))

	_, err := repo.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrDecode)
}
