package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haguru/userstub/pkg/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer("localhost:0", zerolog.NewZerologLoggerWithWriter("test", io.Discard)).(*Server)
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer()
	s.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "yes")
			next.ServeHTTP(w, r)
		})
	})
	require.NoError(t, s.AddRoute(http.MethodGet, "/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	s.SetNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "registered", method: http.MethodGet, path: "/users", want: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/nope", want: http.StatusTeapot},
		{name: "method not allowed", method: http.MethodDelete, path: "/users", want: http.StatusTeapot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			s.Handler().ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
			assert.Equal(t, "yes", rr.Header().Get("X-Test"))
		})
	}
}

func TestServer_AddRouteRejectsEmpty(t *testing.T) {
	s := newTestServer()
	assert.Error(t, s.AddRoute("", "/users", func(w http.ResponseWriter, r *http.Request) {}))
	assert.Error(t, s.AddRoute(http.MethodGet, "", func(w http.ResponseWriter, r *http.Request) {}))
}

func TestServer_Wrap(t *testing.T) {
	s := newTestServer()
	require.NoError(t, s.AddRoute(http.MethodGet, "/users", func(w http.ResponseWriter, r *http.Request) {}))
	s.Wrap(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	})

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestServer_ShutdownStopsListenAndServe(t *testing.T) {
	s := newTestServer()
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	// give the listener a moment to come up
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe did not return after Shutdown")
	}
}
