package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики (заполняются через middleware)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики интеграции с scheduling backend
	ExternalRequestsTotal   *prometheus.CounterVec
	ExternalRequestDuration *prometheus.HistogramVec

	// Бизнес-метрики визарда
	ActiveSessions   prometheus.Gauge
	SessionsStarted  *prometheus.CounterVec
	SubmissionsTotal *prometheus.CounterVec
	SlotFetchErrors  prometheus.Counter
	SlotConflicts    prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ExternalRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "external_requests_total",
			Help:        "Total number of requests to the scheduling backend",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		ExternalRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "external_request_duration_seconds",
			Help:        "Scheduling backend request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "wizard_active_sessions",
			Help:        "Number of live wizard sessions in the store",
			ConstLabels: constLabels,
		}),

		SessionsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_sessions_started_total",
			Help:        "Total number of started wizard sessions",
			ConstLabels: constLabels,
		}, []string{"flow"}),

		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_submissions_total",
			Help:        "Total number of final submissions",
			ConstLabels: constLabels,
		}, []string{"intent", "status"}),

		SlotFetchErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "wizard_slot_fetch_errors_total",
			Help:        "Total number of failed booked-set fetches",
			ConstLabels: constLabels,
		}),

		SlotConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "wizard_slot_conflicts_total",
			Help:        "Total number of submit-time slot conflicts",
			ConstLabels: constLabels,
		}),
	}
}

// IncSessionStarted увеличивает счетчик созданных сессий визарда
func (m *Metrics) IncSessionStarted(flow string) {
	m.SessionsStarted.WithLabelValues(flow).Inc()
}

// IncSubmission увеличивает счетчик финальных отправок
func (m *Metrics) IncSubmission(intent, status string) {
	m.SubmissionsTotal.WithLabelValues(intent, status).Inc()
}

// IncSlotFetchError увеличивает счетчик неудачных загрузок booked-set
func (m *Metrics) IncSlotFetchError() {
	m.SlotFetchErrors.Inc()
}

// IncSlotConflict увеличивает счетчик конфликтов слота при отправке
func (m *Metrics) IncSlotConflict() {
	m.SlotConflicts.Inc()
}

// ObserveExternal записывает исход одного запроса к scheduling backend.
// status — строка HTTP статуса, "0" для сетевых ошибок.
func (m *Metrics) ObserveExternal(operation, status string, seconds float64) {
	m.ExternalRequestsTotal.WithLabelValues(operation, status).Inc()
	m.ExternalRequestDuration.WithLabelValues(operation).Observe(seconds)
}
