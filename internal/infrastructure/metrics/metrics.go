package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request counts and latencies per route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, by method, route and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	reg.MustRegister(requests, duration)
	return &HTTPMetrics{requests: requests, duration: duration}
}

func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// StorageMetrics tracks object store traffic.
type StorageMetrics struct {
	uploads *prometheus.CounterVec
	bytes   *prometheus.CounterVec
	deletes *prometheus.CounterVec
}

func NewStorageMetrics(reg prometheus.Registerer) *StorageMetrics {
	if reg == nil {
		return &StorageMetrics{}
	}
	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "object_store_uploads_total",
		Help: "Object uploads, by mode (single or chunked) and result.",
	}, []string{"mode", "result"})
	bytes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "object_store_uploaded_bytes_total",
		Help: "Bytes written to the object store.",
	}, []string{"mode"})
	deletes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "object_store_deletes_total",
		Help: "Object deletions, by result.",
	}, []string{"result"})
	reg.MustRegister(uploads, bytes, deletes)
	return &StorageMetrics{uploads: uploads, bytes: bytes, deletes: deletes}
}

func (m *StorageMetrics) Upload(mode string, size int, err error) {
	if m == nil || m.uploads == nil {
		return
	}
	m.uploads.WithLabelValues(mode, result(err)).Inc()
	if err == nil {
		m.bytes.WithLabelValues(mode).Add(float64(size))
	}
}

func (m *StorageMetrics) Delete(err error) {
	if m == nil || m.deletes == nil {
		return
	}
	m.deletes.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
