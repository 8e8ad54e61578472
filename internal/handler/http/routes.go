package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/metrics"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withMetrics)
	if len(h.server.CORSAllowedOrigins) > 0 {
		router.Use(h.withCORS())
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/", h.index)
	router.Get("/healthz", h.healthz)
	if !h.server.MetricsDisabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	// routes without authorization
	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if h.server.AuthRateLimit > 0 {
				r.Use(h.withAuthRateLimit())
			}
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
		})
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
		r.Get("/me", h.me)
		r.Get("/version", h.getServerVersion)

		// routes with session authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/stats", h.stats)
			r.Get("/documents", h.listDocuments)
			r.Post("/documents", h.addDocument)
			r.Post("/upload", h.upload)
			r.Delete("/documents/{id}", h.deleteDocument)
			r.Get("/documents/{id}/download", h.download)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgNotFound}, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// withAuthRateLimit throttles login and signup per client IP.
func (h *Handler) withAuthRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.server.AuthRateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordAuthAttempt(authActionFromPath(r.URL.Path), false)
			utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgTooManyRequests}, http.StatusTooManyRequests)
		}),
	)
}

func authActionFromPath(path string) string {
	if path == "/api/signup" {
		return metrics.ActionSignup
	}
	return metrics.ActionLogin
}
