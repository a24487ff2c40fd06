package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBusinessCounters(t *testing.T) {
	m := NewWithRegistry("cleanhome-test", prometheus.NewRegistry())

	m.IncReservationCreated()
	m.IncReservationCreated()
	m.IncReservationConflict()
	m.IncAvailabilityRefresh("poll")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityRefresh.WithLabelValues("poll")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncReservationCreated()
		m.IncReservationConflict()
		m.IncAvailabilityRefresh("realtime")
	})
}
