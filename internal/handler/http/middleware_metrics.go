package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vijaycharanme-code/doc-manager/internal/metrics"
)

// withMetrics records request count and latency labelled by the chi route
// pattern, so /api/documents/{id} is one series regardless of the id.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.RecordHTTPRequest(route, r.Method, mw.statusCode(), time.Since(start))
	})
}
