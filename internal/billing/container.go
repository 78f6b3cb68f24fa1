package billing

import "gorm.io/gorm"

type Container struct {
	Service Service
	Handler *Handler
	// Webhook is nil when no signing secret was given.
	Webhook *WebhookHandler
}

// NewContainer wires subscription storage, the status API and, when
// webhookSecret is set, the Stripe webhook receiver. deduper may be nil.
func NewContainer(db *gorm.DB, webhookSecret string, deduper Deduper) *Container {
	svc := NewService(NewRepository(db))

	c := &Container{
		Service: svc,
		Handler: NewHandler(svc),
	}
	if webhookSecret != "" {
		c.Webhook = NewWebhookHandler(webhookSecret, svc, deduper)
	}
	return c
}
