package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge

	ReservationsCreated  prometheus.Counter
	ReservationConflicts prometheus.Counter
	AvailabilityRefresh  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		ReservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservations written by the booking flow",
			ConstLabels: constLabels,
		}),
		ReservationConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_slot_conflicts_total",
			Help:        "Submissions rejected because the slot was taken",
			ConstLabels: constLabels,
		}),
		AvailabilityRefresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_refresh_total",
			Help:        "Reserved-slot snapshot refreshes by trigger",
			ConstLabels: constLabels,
		}, []string{"trigger"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.ReservationsCreated,
		m.ReservationConflicts,
		m.AvailabilityRefresh,
	)

	return m
}

// IncReservationCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncReservationCreated() {
	if m == nil {
		return
	}
	m.ReservationsCreated.Inc()
}

// IncReservationConflict увеличивает счетчик конфликтов слотов
func (m *Metrics) IncReservationConflict() {
	if m == nil {
		return
	}
	m.ReservationConflicts.Inc()
}

// IncAvailabilityRefresh считает обновления снимка занятых слотов
func (m *Metrics) IncAvailabilityRefresh(trigger string) {
	if m == nil {
		return
	}
	m.AvailabilityRefresh.WithLabelValues(trigger).Inc()
}
