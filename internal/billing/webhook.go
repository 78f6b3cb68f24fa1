package billing

import (
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
	"github.com/saulo-duarte/goaltrack-lambda/internal/observability"
	"github.com/stripe/stripe-go/v81/webhook"
)

const maxWebhookBody = 65536

type WebhookHandler struct {
	secret  string
	service Service
	deduper Deduper
}

// NewWebhookHandler builds the Stripe webhook receiver. deduper may be nil.
func NewWebhookHandler(secret string, service Service, deduper Deduper) *WebhookHandler {
	return &WebhookHandler{secret: secret, service: service, deduper: deduper}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := config.WithContext(ctx)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		log.WithError(err).Warn("Failed to read webhook body")
		config.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, r.Header.Get("Stripe-Signature"), h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		log.WithError(err).Warn("Rejected webhook signature")
		observability.RecordWebhookEvent("unverified", observability.OutcomeInvalid)
		config.Error(w, http.StatusBadRequest, "invalid signature")
		return
	}

	eventType := string(event.Type)
	log = log.WithField("event_id", event.ID).WithField("event_type", eventType)

	if h.deduper != nil {
		first, err := h.deduper.Claim(ctx, event.ID)
		if err != nil {
			log.WithError(err).Warn("Webhook dedup unavailable, processing anyway")
		} else if !first {
			log.Info("Duplicate webhook event skipped")
			observability.RecordWebhookEvent(eventType, observability.OutcomeDuplicate)
			config.JSON(w, http.StatusOK, map[string]bool{"received": true})
			return
		}
	}

	err = h.service.HandleEvent(ctx, event)
	switch {
	case err == nil:
		observability.RecordWebhookEvent(eventType, observability.OutcomeSuccess)
	case errors.Is(err, ErrIgnored):
		observability.RecordWebhookEvent(eventType, observability.OutcomeIgnored)
	default:
		log.WithError(err).Error("Failed to process webhook event")
		observability.RecordWebhookEvent(eventType, observability.OutcomeError)
		if h.deduper != nil {
			if rerr := h.deduper.Release(ctx, event.ID); rerr != nil {
				log.WithError(rerr).Warn("Failed to release webhook event id")
			}
		}
		config.Error(w, http.StatusInternalServerError, "failed to process event")
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"received": true})
}
