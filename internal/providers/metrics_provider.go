package providers

import (
	"callguard/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCallEvents()
	IncOutcome(variant string)
	IncLookupFailure(component, category string)
	ObserveLookupDuration(component string, duration time.Duration)
	IncOverlayTeardown(reason string)
	IncCacheHits()
	IncCacheMisses()
	SetInFlightTasks(count int)
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	callEvents          prometheus.Counter
	outcomes            *prometheus.CounterVec
	lookupFailures      *prometheus.CounterVec
	lookupDuration      *prometheus.HistogramVec
	overlayTeardowns    *prometheus.CounterVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	inFlightTasks       prometheus.Gauge
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCallEvents() {
	m.callEvents.Inc()
}

func (m *MetricsProvider) IncOutcome(variant string) {
	m.outcomes.WithLabelValues(variant).Inc()
}

func (m *MetricsProvider) IncLookupFailure(component, category string) {
	m.lookupFailures.WithLabelValues(component, category).Inc()
}

func (m *MetricsProvider) ObserveLookupDuration(component string, duration time.Duration) {
	m.lookupDuration.WithLabelValues(component).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncOverlayTeardown(reason string) {
	m.overlayTeardowns.WithLabelValues(reason).Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) SetInFlightTasks(count int) {
	m.inFlightTasks.Set(float64(count))
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "callguard_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "callguard_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		callEvents: promauto.NewCounter(prometheus.CounterOpts{
			Name: "callguard_call_events_total",
			Help: "Total number of screened call events",
		}),

		outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "callguard_outcomes_total",
			Help: "Pipeline outcomes by overlay variant",
		}, []string{"variant"}),

		lookupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "callguard_lookup_failures_total",
			Help: "Remote lookups that fell back to the fail-open default",
		}, []string{"component", "category"}),

		lookupDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "callguard_lookup_duration_seconds",
			Help:    "Remote lookup duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 3, 5, 10},
		}, []string{"component"}),

		overlayTeardowns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "callguard_overlay_teardowns_total",
			Help: "Overlay teardowns by reason",
		}, []string{"reason"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "callguard_dedupe_hits_total",
			Help: "Call events dropped as duplicate deliveries",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "callguard_dedupe_misses_total",
			Help: "Call events seen for the first time",
		}),

		inFlightTasks: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "callguard_screening_tasks_in_flight",
			Help: "Screening tasks currently running",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "callguard_persistence_duration_seconds",
			Help:    "Duration of journal persistence in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCallEvents()                                   {}
func (n *noopMetrics) IncOutcome(_ string)                              {}
func (n *noopMetrics) IncLookupFailure(_, _ string)                     {}
func (n *noopMetrics) ObserveLookupDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncOverlayTeardown(_ string)                      {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) SetInFlightTasks(_ int)                           {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
