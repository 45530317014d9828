// Package metrics содержит Prometheus-метрики HTTP-запросов и изменений хранилища.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
)

// Metrics набор счётчиков и гистограмм сервиса.
type Metrics struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	mutations *prometheus.CounterVec
	cascade   *prometheus.CounterVec
}

// New регистрирует метрики в reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "member_hub",
			Name:      "http_requests_total",
			Help:      "Number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "member_hub",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "member_hub",
			Name:      "store_mutations_total",
			Help:      "Mutating store operations by entity, action and result kind.",
		}, []string{"entity", "action", "result"}),
		cascade: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "member_hub",
			Name:      "cascade_records_total",
			Help:      "Records removed or repaired by the user delete cascade, by step.",
		}, []string{"step"}),
	}
}

// ObserveRequest учитывает обработанный HTTP-запрос.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveMutation учитывает изменение хранилища. result — "ok" или вид ошибки.
func (m *Metrics) ObserveMutation(entity, action string, err error) {
	result := "ok"
	if err != nil {
		result = apperr.KindOf(err).String()
	}
	m.mutations.WithLabelValues(entity, action, result).Inc()
}

// ObserveCascade учитывает записи, затронутые шагом каскадного удаления.
func (m *Metrics) ObserveCascade(step string, count int) {
	if count <= 0 {
		return
	}
	m.cascade.WithLabelValues(step).Add(float64(count))
}
