package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/haguru/userstub/internal/interfaces"
	"github.com/haguru/userstub/internal/models/dto"
	"github.com/haguru/userstub/internal/schema"
	"github.com/haguru/userstub/internal/userservice"
)

type Route struct {
	Metrics     interfaces.Metrics
	UserService interfaces.UserService
	Logger      interfaces.Logger
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService, logger interfaces.Logger) *Route {
	return &Route{
		Metrics:     metrics,
		UserService: userService,
		Logger:      logger,
	}
}

// Register adds every user route to server. Requests matching none of them
// are answered by Unrecognized.
func (r *Route) Register(server interfaces.Server) error {
	routes := []struct {
		method  string
		route   string
		handler http.HandlerFunc
	}{
		{http.MethodGet, UsersRouteAPI, r.exact(r.ListUsers)},
		{http.MethodGet, ResetRouteAPI, r.exact(r.Reset)},
		{http.MethodGet, UserByKeyRouteAPI, r.GetUser},
		{http.MethodPost, UserRouteAPI, r.exact(r.CreateUser)},
		{http.MethodPost, CreateWithListRouteAPI, r.exact(r.CreateWithList)},
		{http.MethodPut, UserByKeyRouteAPI, r.UpdateUser},
		{http.MethodDelete, UserByKeyRouteAPI, r.DeleteUser},
		// createWithList is an ordinary username or id for the other methods
		{http.MethodGet, CreateWithListRouteAPI, r.GetUser},
		{http.MethodPut, CreateWithListRouteAPI, r.UpdateUser},
		{http.MethodDelete, CreateWithListRouteAPI, r.DeleteUser},
	}

	for _, rt := range routes {
		if err := server.AddRoute(rt.method, rt.route, rt.handler); err != nil {
			return fmt.Errorf("failed to add %s %s route: %w", rt.method, rt.route, err)
		}
	}
	server.SetNotFound(r.Unrecognized)
	return nil
}

// ListUsers handles GET /users.
func (r *Route) ListUsers(w http.ResponseWriter, req *http.Request) {
	defer r.track(req.Context(), OpList, time.Now(), false)

	r.writeJSON(w, http.StatusOK, r.UserService.ListUsers(req.Context()))
}

// GetUser handles GET /user/{username}.
func (r *Route) GetUser(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	username := lastSegment(req)

	user, err := r.UserService.GetUserByUsername(req.Context(), username)
	if err != nil {
		r.track(req.Context(), OpGetByUsername, start, true)
		r.writeJSON(w, http.StatusBadRequest, dto.ErrorResponseDTO{Error: ErrUserNotFound})
		return
	}

	r.track(req.Context(), OpGetByUsername, start, false)
	r.writeJSON(w, http.StatusOK, user)
}

// Reset handles GET /reset.
func (r *Route) Reset(w http.ResponseWriter, req *http.Request) {
	defer r.track(req.Context(), OpReset, time.Now(), false)

	r.UserService.Reset(req.Context())
	r.writeJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: MsgResetSuccessful})
}

// CreateUser handles POST /user. Every failure is a 400 with an empty body.
func (r *Route) CreateUser(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	payload, err := r.decodeBody(w, req)
	if err != nil {
		r.track(req.Context(), OpCreate, start, true)
		r.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	if _, err := r.UserService.CreateUser(req.Context(), payload); err != nil {
		r.track(req.Context(), OpCreate, start, true)
		r.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	r.track(req.Context(), OpCreate, start, false)
	r.writeJSON(w, http.StatusCreated, payload)
}

// CreateWithList handles POST /user/createWithList. The whole list is
// rejected with a 400 if any entry is invalid or collides.
func (r *Route) CreateWithList(w http.ResponseWriter, req *http.Request) {
	start := time.Now()

	payload, err := r.decodeBody(w, req)
	if err != nil {
		r.track(req.Context(), OpCreateWithList, start, true)
		r.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	if _, err := r.UserService.CreateUsers(req.Context(), payload); err != nil {
		r.track(req.Context(), OpCreateWithList, start, true)
		r.writeJSON(w, http.StatusBadRequest, nil)
		return
	}

	r.track(req.Context(), OpCreateWithList, start, false)
	r.writeJSON(w, http.StatusCreated, payload)
}

// UpdateUser handles PUT /user/{id}.
func (r *Route) UpdateUser(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	id := lastSegment(req)

	// an undecodable body is handed over as nil; the service reports an
	// unknown id before it looks at the payload
	payload, err := r.decodeBody(w, req)
	if err != nil {
		payload = nil
	}

	user, err := r.UserService.UpdateUser(req.Context(), id, payload)
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		r.track(req.Context(), OpUpdate, start, true)
		r.writeJSON(w, http.StatusNotFound, dto.ErrorResponseDTO{Error: ErrUserNotFound})
	case err != nil:
		r.track(req.Context(), OpUpdate, start, true)
		r.writeJSON(w, http.StatusBadRequest, dto.ErrorResponseDTO{Error: ErrNotValidRequestData})
	default:
		r.track(req.Context(), OpUpdate, start, false)
		r.writeJSON(w, http.StatusOK, user)
	}
}

// DeleteUser handles DELETE /user/{id}.
func (r *Route) DeleteUser(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	id := lastSegment(req)

	if err := r.UserService.DeleteUser(req.Context(), id); err != nil {
		r.track(req.Context(), OpDelete, start, true)
		r.writeJSON(w, http.StatusNotFound, dto.ErrorResponseDTO{Error: ErrUserNotFound})
		return
	}

	r.track(req.Context(), OpDelete, start, false)
	r.writeJSON(w, http.StatusOK, nil)
}

// Unrecognized answers every method and path no route matches with 418.
// POST bodies are decoded first, so a malformed POST body is a 400 on any path.
func (r *Route) Unrecognized(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(UnrecognizedRoutesTotal)
	}

	if req.Method == http.MethodPost {
		if _, err := r.decodeBody(w, req); err != nil {
			r.writeJSON(w, http.StatusBadRequest, nil)
			return
		}
	}

	r.writeJSON(w, http.StatusTeapot, nil)
}

// exact hands requests whose target carries a query string to Unrecognized,
// so /users?page=2 is not /users.
func (r *Route) exact(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.URL.RawQuery != "" || req.URL.ForceQuery {
			r.Unrecognized(w, req)
			return
		}
		next(w, req)
	}
}

// decodeBody reads and decodes the JSON request body.
func (r *Route) decodeBody(w http.ResponseWriter, req *http.Request) (any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return schema.Decode(body)
}

// writeJSON writes body with status. Nil, empty objects and empty lists are
// all written as {}.
func (r *Route) writeJSON(w http.ResponseWriter, status int, body any) {
	if isEmptyBody(body) {
		body = struct{}{}
	}

	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && r.Logger != nil {
		r.Logger.Error("Failed to encode response", "status", status, "error", err)
	}
}

func isEmptyBody(body any) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Map, reflect.Slice:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// lastSegment returns the text after the final slash of the raw request
// target, query string included and percent escapes left as sent.
func lastSegment(req *http.Request) string {
	target := req.URL.RequestURI()
	return target[strings.LastIndex(target, "/")+1:]
}

// track records request count, failures and duration for operation, and
// refreshes the stored users gauge.
func (r *Route) track(ctx context.Context, operation string, start time.Time, failed bool) {
	if r.Metrics == nil {
		return
	}
	r.Metrics.IncCounterVec(UserRequestsTotal, operation)
	if failed {
		r.Metrics.IncCounterVec(UserErrorsTotal, operation)
	}
	r.Metrics.ObserveHistogramVec(UserRequestDurationSeconds, time.Since(start).Seconds(), operation)
	r.Metrics.SetGauge(UsersStored, float64(r.UserService.Count(ctx)))
}
