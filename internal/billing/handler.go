package billing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/goaltrack-lambda/internal/auth"
	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Subscription requested without authentication")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	status, err := h.service.Status(r.Context(), claims.UserID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, status)
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Products)
}

// GetPlan looks a plan up by name, case-insensitively.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	product, ok := ProductByName(chi.URLParam(r, "name"))
	if !ok {
		config.Error(w, http.StatusNotFound, "plan not found")
		return
	}

	config.JSON(w, http.StatusOK, product)
}
