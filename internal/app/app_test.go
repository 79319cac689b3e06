package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/haguru/userstub/config"
	"github.com/haguru/userstub/internal/middleware"
	"github.com/haguru/userstub/pkg/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.ServiceConfig {
	return &config.ServiceConfig{
		ServiceName: "userstub",
		LogLevel:    "error",
		Host:        "localhost",
		Port:        "0",
		Metrics: config.MetricsConfig{
			Enabled: true,
			Host:    "localhost",
			Port:    "0",
		},
	}
}

func newTestApp(t *testing.T, cfg *config.ServiceConfig) *App {
	t.Helper()
	app, err := NewApp(cfg, zerolog.NewZerologLoggerWithWriter("test", io.Discard))
	require.NoError(t, err)
	return app
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ServiceName = ""

	_, err := NewApp(cfg, zerolog.NewZerologLoggerWithWriter("test", io.Discard))
	assert.Error(t, err)
}

func TestNewApp_ServesUsers(t *testing.T) {
	app := newTestApp(t, testConfig())
	h := app.Server.Handler()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	assert.JSONEq(t, `[{"id":1,"username":"theUser","firstName":"John","lastName":"James","email":"john@email.com","password":"12345"}]`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code, "metrics are not served on the API listener")
}

func TestNewApp_MetricsServer(t *testing.T) {
	app := newTestApp(t, testConfig())
	require.NotNil(t, app.MetricsServer)

	app.Server.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	rr := httptest.NewRecorder()
	app.MetricsServer.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "userstub_users_stored 1"), body)
	assert.True(t, strings.Contains(body, "userstub_unrecognized_routes_total 1"), body)
	assert.True(t, strings.Contains(body, "go_goroutines"), body)
}

func TestNewApp_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{}

	app := newTestApp(t, cfg)
	assert.Nil(t, app.MetricsServer)
}

func TestNewApp_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}
	h := newTestApp(t, cfg).Server.Handler()

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/users", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestApp_RunServesWhenMetricsPortTaken(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()
	_, metricsPort, err := net.SplitHostPort(taken.Addr().String())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = freePort(t)
	cfg.Metrics.Host = "127.0.0.1"
	cfg.Metrics.Port = metricsPort
	app := newTestApp(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	url := "http://" + cfg.Address() + "/users"
	assert.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond, "API must serve while the metrics port is taken")

	select {
	case err := <-done:
		t.Fatalf("Run returned early: %v", err)
	default:
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * ShutdownTimeout):
		t.Fatal("Run did not return after cancel")
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app := newTestApp(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * ShutdownTimeout):
		t.Fatal("Run did not return after cancel")
	}
}
