package checkout

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/goaltrack-lambda/internal/auth"
	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
	"github.com/saulo-duarte/goaltrack-lambda/internal/observability"
)

var errNullBody = errors.New("request body must not be null")

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func setCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "*")
}

// CreateSession serves every method on the checkout path: OPTIONS preflight,
// POST session creation, and 405 for the rest.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
	default:
		config.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var decoded any
	raw, err := io.ReadAll(r.Body)
	if err == nil {
		err = json.Unmarshal(raw, &decoded)
	}
	if err != nil {
		log.WithError(err).Error("Failed to decode checkout request body")
		observability.RecordCheckoutSession("", observability.OutcomeError)
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if decoded == nil {
		log.WithError(errNullBody).Error("Failed to decode checkout request body")
		observability.RecordCheckoutSession("", observability.OutcomeError)
		config.Error(w, http.StatusInternalServerError, errNullBody.Error())
		return
	}

	// Non-object bodies carry none of the parameters.
	body, _ := decoded.(map[string]any)
	log.WithField("body", body).Debug("Received checkout request")

	req, err := Validate(body)
	if err != nil {
		log.WithError(err).Warn("Checkout parameter validation failed")
		observability.RecordCheckoutSession("", observability.OutcomeInvalid)
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var userID string
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		userID = claims.UserID
	}

	session, err := h.service.CreateSession(r.Context(), *req, userID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, session)
}
