package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterCounter("unrecognized_routes_total", "Total number of unrecognized routes")
	m.RegisterCounterVec("user_requests_total", "Total number of user requests", []string{"operation"})

	m.IncCounter("unrecognized_routes_total")
	m.IncCounter("unrecognized_routes_total")
	m.IncCounterVec("user_requests_total", "create")
	m.IncCounter("not_registered")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.counters["unrecognized_routes_total"]))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.counterVecs["user_requests_total"].WithLabelValues("create")))
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterGauge("users_stored", "Number of users in the store")

	m.SetGauge("users_stored", 3)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.gauges["users_stored"]))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("test_service")
	m.RegisterHistogramVec("user_request_duration_seconds", "Duration of user requests", []float64{0.1, 1}, []string{"operation"})
	m.ObserveHistogramVec("user_request_duration_seconds", 0.05, "list")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_service_user_request_duration_seconds_count{operation="list"} 1`)
}

func TestSanitizeNamespace(t *testing.T) {
	assert.Equal(t, "user_stub_v2", sanitizeNamespace("user-stub.v2"))
	assert.Equal(t, "userstub", sanitizeNamespace("userstub"))
}
