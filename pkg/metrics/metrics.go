package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barberqueue"

// Outcome labels
const (
	OutcomeAdmitted = "admitted"
	OutcomeRefused  = "refused"
	OutcomePromoted = "promoted"
	OutcomeNoop     = "noop"
	OutcomeEmpty    = "empty"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	QueueAdmissions     *prometheus.CounterVec
	QueueAdvances       *prometheus.CounterVec
	QueueExits          *prometheus.CounterVec
	WaitEstimateMinutes prometheus.Histogram
	BookingsCreated     *prometheus.CounterVec
	Notifications       *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном регистре (для тестов и отключенных метрик)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	f := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		QueueAdmissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "queue_admissions_total",
			Help:        "Walk-in admission attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		QueueAdvances: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "queue_advances_total",
			Help:        "Call-next attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		QueueExits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "queue_exits_total",
			Help:        "Queue entries reaching a terminal status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		WaitEstimateMinutes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "wait_estimate_minutes",
			Help:        "Total estimated wait handed to walk-in customers",
			Buckets:     []float64{0, 15, 30, 60, 90, 120, 180, 240},
			ConstLabels: constLabels,
		}),

		BookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "bookings_created_total",
			Help:        "Bookings created by initial status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "notifications_enqueued_total",
			Help:        "Notification hooks by type and result",
			ConstLabels: constLabels,
		}, []string{"type", "result"}),
	}
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery записывает длительность запроса к БД
func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetConnections публикует состояние пула соединений
func (m *Metrics) SetConnections(open, inUse, idle int) {
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
}

func (m *Metrics) RecordAdmission(outcome string) {
	m.QueueAdmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordAdvance(outcome string) {
	m.QueueAdvances.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordExit(status string) {
	m.QueueExits.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveEstimate(totalMinutes int) {
	m.WaitEstimateMinutes.Observe(float64(totalMinutes))
}

func (m *Metrics) RecordBooking(status string) {
	m.BookingsCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordNotification(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Notifications.WithLabelValues(kind, result).Inc()
}
