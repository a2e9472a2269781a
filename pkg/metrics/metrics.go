package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	DoctorsCreatedTotal  prometheus.Counter
	PatientsCreatedTotal prometheus.Counter
	AppointmentsBooked   prometheus.Counter
	BookingsRejected     *prometheus.CounterVec
	StatusChangesTotal   *prometheus.CounterVec
	LoginAttemptsTotal   *prometheus.CounterVec

	DBQueryDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewCollector registers every metric on reg. Tests pass a fresh
// prometheus.NewRegistry(); the process passes prometheus.DefaultRegisterer.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	namespace = strings.ReplaceAll(namespace, "-", "_")
	factory := promauto.With(reg)

	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	return &Collector{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method", "path", "status"}),

		InFlightGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		DoctorsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clinic",
			Name:      "doctors_created_total",
			Help:      "Total number of doctor records created.",
		}),

		PatientsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clinic",
			Name:      "patients_created_total",
			Help:      "Total number of patient records created.",
		}),

		AppointmentsBooked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clinic",
			Name:      "appointments_booked_total",
			Help:      "Total appointments booked.",
		}),

		BookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clinic",
			Name:      "bookings_rejected_total",
			Help:      "Booking attempts rejected, by reason (validation, not_found, double_booking, storage).",
		}, []string{"reason"}),

		StatusChangesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clinic",
			Name:      "appointment_status_changes_total",
			Help:      "Appointment status updates by new status.",
		}, []string{"status"}),

		LoginAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Credential checks by outcome.",
		}, []string{"outcome"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database statement latency distribution.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}, []string{"operation"}),

		gatherer: gatherer,
	}
}

// Handler exposes the metrics registered on this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
