package billing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/goaltrack-lambda/internal/auth"
)

func SubscriptionRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)
	r.Get("/", h.GetSubscription)

	return r
}

func PlanRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListPlans)
	r.Get("/{name}", h.GetPlan)

	return r
}
