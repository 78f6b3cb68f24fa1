package container

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/goaltrack-lambda/internal/auth"
	"github.com/saulo-duarte/goaltrack-lambda/internal/billing"
	"github.com/saulo-duarte/goaltrack-lambda/internal/checkout"
	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
	"github.com/saulo-duarte/goaltrack-lambda/internal/goal"
)

type API struct {
	Config           config.Config
	GoalContainer    *goal.Container
	BillingContainer *billing.Container
}

func NewAPI() *API {
	config.LoadDotEnv()
	config.Init()
	cfg := config.Load()
	auth.Init()

	if err := config.Connect(context.Background(), cfg.DatabaseDSN); err != nil {
		config.Logger.WithError(err).Fatal("failed to connect to DB")
	}

	return &API{
		Config:           cfg,
		GoalContainer:    goal.NewContainer(config.DB),
		BillingContainer: billing.NewContainer(config.DB, "", nil),
	}
}

type Checkout struct {
	Config            config.Config
	CheckoutContainer *checkout.Container
	// WebhookHandler is nil unless STRIPE_WEBHOOK_SECRET is set.
	WebhookHandler http.Handler
}

func NewCheckout() *Checkout {
	config.LoadDotEnv()
	config.Init()
	cfg := config.LoadCheckout()

	if cfg.JWTSecret != "" {
		auth.Init()
	}

	c := &Checkout{
		Config:            cfg,
		CheckoutContainer: checkout.NewContainer(checkout.NewStripeProvider(cfg.StripeSecretKey)),
	}

	if cfg.StripeWebhookSecret == "" {
		config.Logger.Info("STRIPE_WEBHOOK_SECRET not set, webhook endpoint disabled")
		return c
	}

	if err := config.Connect(context.Background(), cfg.DatabaseDSN); err != nil {
		config.Logger.WithError(err).Fatal("failed to connect to DB")
	}
	c.WebhookHandler = billing.NewContainer(config.DB, cfg.StripeWebhookSecret, newDeduper(cfg)).Webhook
	return c
}

func newDeduper(cfg config.Config) billing.Deduper {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		config.Logger.WithError(err).Warn("Invalid REDIS_URL, webhook de-duplication disabled")
		return nil
	}
	return billing.NewRedisDeduper(redis.NewClient(opts), cfg.WebhookDedupTTL)
}
