package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saulo-duarte/goaltrack-lambda/internal/auth"
	"github.com/saulo-duarte/goaltrack-lambda/internal/billing"
	"github.com/saulo-duarte/goaltrack-lambda/internal/checkout"
	"github.com/saulo-duarte/goaltrack-lambda/internal/goal"
	"github.com/saulo-duarte/goaltrack-lambda/internal/middlewares"
)

type RouterConfig struct {
	GoalHandler    *goal.Handler
	BillingHandler *billing.Handler
	// RequireAuth puts the goal routes behind the JWT middleware.
	RequireAuth bool
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", health)
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/plans", billing.PlanRoutes(cfg.BillingHandler))
	r.Mount("/subscription", billing.SubscriptionRoutes(cfg.BillingHandler))

	r.Group(func(r chi.Router) {
		if cfg.RequireAuth {
			r.Use(auth.AuthMiddleware)
		}

		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
	})
	return r
}

type CheckoutRouterConfig struct {
	CheckoutHandler *checkout.Handler
	// WebhookHandler is nil when no webhook secret is configured.
	WebhookHandler http.Handler
}

// NewCheckout serves the checkout function. CORS is handled by the checkout
// handler itself so the preflight response stays exactly as specified there.
func NewCheckout(cfg CheckoutRouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", health)
	r.Handle("/metrics", promhttp.Handler())

	if cfg.WebhookHandler != nil {
		r.Method(http.MethodPost, "/webhook", cfg.WebhookHandler)
	}
	r.Mount("/", checkout.Routes(cfg.CheckoutHandler))

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
