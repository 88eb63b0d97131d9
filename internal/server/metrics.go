package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/julianstephens/calmher/internal/models"
)

// Metrics owns its registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	schedulesGenerated *prometheus.CounterVec
	eventsScheduled    prometheus.Counter
	malformedEvents    prometheus.Counter
	assessmentsScored  *prometheus.CounterVec
	persistFailures    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calmher_http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "calmher_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		schedulesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calmher_schedules_generated_total",
			Help: "Schedules generated by burnout category.",
		}, []string{"category"}),
		eventsScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calmher_events_scheduled_total",
			Help: "Wellness events placed across all generated schedules.",
		}),
		malformedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calmher_malformed_events_total",
			Help: "Calendar events skipped because their times could not be parsed.",
		}),
		assessmentsScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calmher_assessments_scored_total",
			Help: "Burnout assessments scored by risk level.",
		}, []string{"category"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calmher_persist_failures_total",
			Help: "Records the storage sink failed to accept.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.schedulesGenerated,
		m.eventsScheduled,
		m.malformedEvents,
		m.assessmentsScored,
		m.persistFailures,
	)

	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// WrapHandler records the request count and latency of next under route.
func (m *Metrics) WrapHandler(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		if m != nil {
			m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
			m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ScheduleGenerated(category models.SeverityCategory, events int) {
	if m == nil {
		return
	}
	m.schedulesGenerated.WithLabelValues(category.String()).Inc()
	m.eventsScheduled.Add(float64(events))
}

func (m *Metrics) MalformedEvents(n int) {
	if m == nil {
		return
	}
	m.malformedEvents.Add(float64(n))
}

func (m *Metrics) AssessmentScored(category models.SeverityCategory) {
	if m == nil {
		return
	}
	m.assessmentsScored.WithLabelValues(category.String()).Inc()
}

func (m *Metrics) PersistFailed(kind string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(kind).Inc()
}
