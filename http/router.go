package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealer-finance/metrics"
)

type RouterDeps struct {
	Loans       *LoanHandler
	Terms       *TermComparisonHandler
	Inventory   *InventoryHandler
	RateLimiter *RateLimiter
	Ready       []Pinger
	AdminAPIKey string
}

// NewRouter wires every route. Finance endpoints are rate limited per client
// IP; inventory browsing is not. Admin routes require X-API-Key.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", HandleHealthz())
	r.Get("/readyz", HandleReadyz(deps.Ready...))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/finance", func(r chi.Router) {
			r.Get("/options", deps.Loans.GetOptions)
			r.Get("/bounds", deps.Loans.GetBounds)

			r.Group(func(r chi.Router) {
				r.Use(rateLimitIfSet(deps.RateLimiter))
				r.Post("/quote", deps.Loans.CalculateQuote)
				r.Post("/schedule", deps.Loans.CalculateSchedule)
				r.Post("/compare", deps.Terms.CompareTerms)
			})
		})

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", deps.Inventory.SearchVehicles)
			r.Get("/{id}", deps.Inventory.GetVehicle)
			r.With(rateLimitIfSet(deps.RateLimiter)).Post("/{id}/quote", deps.Inventory.QuoteVehicle)
		})

		// Quote history spans every client, so it is staff-only and absent
		// unless a key is configured.
		if deps.AdminAPIKey != "" {
			r.Route("/admin", func(r chi.Router) {
				r.Use(AdminAuthMiddleware(deps.AdminAPIKey))
				r.Get("/quotes", deps.Loans.RecentQuotes)
			})
		}
	})

	return r
}

func rateLimitIfSet(limiter *RateLimiter) func(http.Handler) http.Handler {
	if limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return RateLimitMiddleware(limiter)
}
