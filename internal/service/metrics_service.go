package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the
// document store.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	documentOps     *prometheus.HistogramVec
	timerCredits    prometheus.Counter
	creditedMinutes prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	documentOps := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "document_operation_duration_seconds",
		Help:    "Duration of document store reads and writes",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	timerCredits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timer_credits_total",
		Help: "Total number of study-time credits applied",
	})

	creditedMinutes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timer_credited_minutes_total",
		Help: "Total study minutes credited to exams",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, documentOps, timerCredits, creditedMinutes, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		documentOps:     documentOps,
		timerCredits:    timerCredits,
		creditedMinutes: creditedMinutes,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveDocumentOp records the duration of a document store read or write.
// Matches the store's observer signature.
func (m *MetricsService) ObserveDocumentOp(op string, duration time.Duration) {
	if m == nil {
		return
	}
	m.documentOps.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordTimerCredit counts one applied study-time credit.
func (m *MetricsService) RecordTimerCredit(minutes int) {
	if m == nil {
		return
	}
	m.timerCredits.Inc()
	m.creditedMinutes.Add(float64(minutes))
}
