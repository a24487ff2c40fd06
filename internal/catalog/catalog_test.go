package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewDefault()
	require.NoError(t, err)
	return r
}

func TestPrice(t *testing.T) {
	r := newRegistry(t)

	cases := []struct {
		name     string
		service  string
		formData map[string]any
		want     float64
	}{
		{"sofa 3 seats", "sofa", map[string]any{"seats": "3"}, 140},
		{"sofa seats from json number", "sofa", map[string]any{"seats": float64(3)}, 140},
		{"sofa 1 seat", "sofa", map[string]any{"seats": 1}, 80},
		{"mattress 140-160", "mattress", map[string]any{"size": "140-160"}, 135},
		{"car suv premium", "car", map[string]any{"vehicle_size": "suv", "package": "premium"}, 250},
		{"car with extras", "car", map[string]any{"vehicle_size": "citadine", "package": "essentiel", "extras": []any{"odeurs", "siege-enfant"}}, 185},
		{"fixed", "home", nil, 180},
		{"no rule uses default", "windows", nil, domain.DefaultEstimatedPrice},
		{"quote ignores options", "end-of-lease", map[string]any{"rooms": 4}, 0},
	}

	for _, tt := range cases {
		entry, err := r.Get(tt.service)
		require.NoError(t, err, tt.name)
		price, err := entry.Price(tt.formData)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, price, tt.name)
	}
}

func TestValidate(t *testing.T) {
	r := newRegistry(t)

	sofa, err := r.Get("sofa")
	require.NoError(t, err)
	assert.ErrorIs(t, sofa.Validate(map[string]any{}), ErrMissingOption)
	assert.ErrorIs(t, sofa.Validate(map[string]any{"seats": "12"}), ErrInvalidOption)

	car, err := r.Get("car")
	require.NoError(t, err)
	assert.ErrorIs(t, car.Validate(map[string]any{"vehicle_size": "bus", "package": "premium"}), ErrInvalidOption)
	assert.ErrorIs(t, car.Validate(map[string]any{"vehicle_size": "suv"}), ErrMissingOption)
	assert.ErrorIs(t, car.Validate(map[string]any{"vehicle_size": "suv", "package": "premium", "extras": []string{"cire"}}), ErrInvalidOption)

	lease, err := r.Get("end-of-lease")
	require.NoError(t, err)
	assert.ErrorIs(t, lease.Validate(nil), ErrMissingOption)

	_, err = r.Get("pool")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestQuoteOnly(t *testing.T) {
	r := newRegistry(t)
	assert.ElementsMatch(t, []string{"end-of-lease", "office", "post-construction"}, r.QuoteOnlyIDs())

	entry, err := r.Get("office")
	require.NoError(t, err)
	assert.True(t, entry.Ref.QuoteOnly)
	assert.Equal(t, domain.PricingQuote, entry.Pricing)
}

func TestSchema(t *testing.T) {
	r := newRegistry(t)

	sofa, err := r.Get("sofa")
	require.NoError(t, err)
	require.Len(t, sofa.Fields, 1)
	assert.Equal(t, "seats", sofa.Fields[0].Name)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, sofa.Fields[0].Options)

	car, err := r.Get("car")
	require.NoError(t, err)
	require.Len(t, car.Fields, 3)
	assert.Equal(t, []string{"essentiel", "premium"}, car.Fields[1].Options)

	assert.Equal(t, "sofa", r.List()[0].Ref.ID)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(`
[[services]]
id = "x"
name = "X"
pricing = "per_hour"
`)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = Parse(`
[[services]]
id = "x"
name = "X"
pricing = "fixed"
`)
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = Parse(`
[[services]]
id = "x"
name = "X"

[[services]]
id = "x"
name = "Y"
`)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
