package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/items", 200, 15*time.Millisecond)
	m.Observe("GET", "/api/items", 200, 5*time.Millisecond)
	m.Observe("GET", "", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/items", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unknown", "404")))
}

func TestStorageMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorageMetrics(reg)

	m.Upload("chunked", 1024, nil)
	m.Upload("single", 10, errors.New("boom"))
	m.Delete(nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues("chunked", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues("single", "error")))
	assert.Equal(t, 1024.0, testutil.ToFloat64(m.bytes.WithLabelValues("chunked")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.bytes.WithLabelValues("single")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deletes.WithLabelValues("ok")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var h *HTTPMetrics
	var s *StorageMetrics
	assert.NotPanics(t, func() {
		h.Observe("GET", "/", 200, time.Millisecond)
		s.Upload("single", 1, nil)
		s.Delete(nil)
		NewHTTPMetrics(nil).Observe("GET", "/", 200, time.Millisecond)
	})
}
