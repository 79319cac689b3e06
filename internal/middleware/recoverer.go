package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/haguru/userstub/internal/interfaces"
)

// Recoverer runs next behind chi's Recoverer and gives the bare 500 it
// writes after a panic an empty JSON object as body.
func Recoverer(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		recovered := chimiddleware.Recoverer(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			recovered.ServeHTTP(ww, r)

			if ww.Status() == http.StatusInternalServerError && ww.BytesWritten() == 0 {
				logger.Error("Recovered from panic", "method", r.Method, "path", r.URL.Path)
				_, _ = ww.Write([]byte("{}\n"))
			}
		})
	}
}
