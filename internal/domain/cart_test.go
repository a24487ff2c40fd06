package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sofa     = ServiceRef{ID: "sofa", Name: "Nettoyage de canapé"}
	mattress = ServiceRef{ID: "mattress", Name: "Nettoyage de matelas"}
	lease    = ServiceRef{ID: "end-of-lease", Name: "Nettoyage de fin de bail", QuoteOnly: true}
)

func expectedTotal(c *Cart) float64 {
	total := 0.0
	for _, item := range c.Items {
		if !item.Service.QuoteOnly {
			total += item.EstimatedPrice
		}
	}
	return total
}

func TestCart_TotalExcludesQuoteOnly(t *testing.T) {
	now := time.Now()
	cart := NewCart()

	first := cart.AddItem(sofa, map[string]any{"seats": 3}, 140, now)
	cart.AddItem(mattress, map[string]any{"size": "140-160"}, 135, now)
	quote := cart.AddItem(lease, nil, 250, now)

	assert.Equal(t, 275.0, cart.TotalPrice)
	assert.Equal(t, QuotePrice, quote.EstimatedPrice)
	assert.True(t, cart.HasQuoteItems())

	assert.True(t, cart.RemoveItem(first.ID, now))
	assert.Equal(t, 135.0, cart.TotalPrice)

	assert.False(t, cart.RemoveItem("missing", now))
	assert.Equal(t, 135.0, cart.TotalPrice)
	assert.Len(t, cart.Items, 2)
}

func TestCart_TotalInvariantOverSequences(t *testing.T) {
	now := time.Now()
	cart := NewCart()
	services := []ServiceRef{sofa, mattress, lease}
	var ids []string

	for i := 0; i < 30; i++ {
		if i%4 == 3 && len(ids) > 0 {
			cart.RemoveItem(ids[0], now)
			ids = ids[1:]
		} else {
			item := cart.AddItem(services[i%len(services)], nil, float64(10*i), now)
			ids = append(ids, item.ID)
		}
		require.InDelta(t, expectedTotal(cart), cart.TotalPrice, 1e-9)
	}
}

func TestCart_SnapshotRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	cart := NewCart()
	cart.AddItem(sofa, map[string]any{"seats": "3"}, 140, now)
	cart.AddItem(lease, nil, 0, now)
	cart.SetAddress(AddressRef{ID: "address.1", PlaceName: "Rue du Lac 1, 1003 Lausanne", Center: [2]float64{6.63, 46.52}, City: "Lausanne", Postcode: "1003"}, now)
	cart.SetContactInfo(ContactInfo{Name: "Anna", Email: "anna@example.ch", Phone: "0791234567"}, now)

	raw, err := json.Marshal(cart.Snapshot())
	require.NoError(t, err)

	var snapshot CartSnapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	restored := CartFromSnapshot(snapshot)

	assert.Equal(t, cart.SessionID, restored.SessionID)
	assert.Equal(t, cart.Address, restored.Address)
	assert.Equal(t, cart.ContactInfo, restored.ContactInfo)
	require.Len(t, restored.Items, 2)
	assert.Equal(t, cart.Items[0].ID, restored.Items[0].ID)
	assert.Equal(t, "3", restored.Items[0].FormData["seats"])
	assert.Equal(t, cart.TotalPrice, restored.TotalPrice)
}

func TestNewCart_FreshSession(t *testing.T) {
	a, b := NewCart(), NewCart()
	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.True(t, a.IsEmpty())
	assert.Nil(t, a.Address)
	assert.Nil(t, a.ContactInfo)
}
