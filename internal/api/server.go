// Package api exposes the contribution calculations over HTTP.
//
// Routes:
//
//	POST /api/contribution   required rate and per-paycheck amount
//	POST /api/scenario       what-if projection for a contribution rate
//	GET  /api/periods        remaining pay period estimate
//	POST /api/plan           full plan for a profile body
//	GET  /api/plan           full plan from share link query parameters
//	GET  /api/limits         contribution limits for a plan year
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus metrics
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Options configures the router
type Options struct {
	AllowedOrigins []string
	RateLimit      float64 // requests per second across all clients, 0 disables
	RateBurst      int
}

// DefaultOptions returns options suitable for local use
func DefaultOptions() Options {
	return Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		RateLimit:      50,
		RateBurst:      100,
	}
}

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.Log))
	r.Use(middleware.Recoverer)
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if opts.RateLimit > 0 {
		r.Use(rateLimiter(rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.RateBurst, 1)), h.Metrics))
	}

	r.Get("/healthz", h.Health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/contribution", h.ComputeContribution)
		r.Post("/scenario", h.ComputeScenario)
		r.Get("/periods", h.EstimatePeriods)
		r.Get("/limits", h.Limits)
		r.Post("/plan", h.Plan)
		r.Get("/plan", h.SharedPlan)
	})

	return r
}

// requestLogger logs one line per request through zerolog
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}

// rateLimiter rejects requests beyond the limiter's budget with 429
func rateLimiter(limiter *rate.Limiter, metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				if metrics != nil {
					metrics.RateLimited.Inc()
				}
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
