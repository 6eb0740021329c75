package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/guitarshop-backend/pkg/metrics"
)

// Metrics records request counts and latency labelled by chi route pattern, so
// /api/cart/12 and /api/cart/13 share a series.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.Start()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			done(r.Method, routePattern(r), rec.statusCode())
		})
	}
}

// routePattern is only complete once routing has finished.
func routePattern(r *http.Request) string {
	if ctx := chi.RouteContext(r.Context()); ctx != nil {
		return ctx.RoutePattern()
	}
	return ""
}
