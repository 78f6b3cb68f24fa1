package billing

import "time"

// ProviderStatus is the subscription status reported by Stripe.
type ProviderStatus string

const (
	ProviderStatusActive            ProviderStatus = "active"
	ProviderStatusTrialing          ProviderStatus = "trialing"
	ProviderStatusPastDue           ProviderStatus = "past_due"
	ProviderStatusCanceled          ProviderStatus = "canceled"
	ProviderStatusIncomplete        ProviderStatus = "incomplete"
	ProviderStatusIncompleteExpired ProviderStatus = "incomplete_expired"
	ProviderStatusUnpaid            ProviderStatus = "unpaid"
	ProviderStatusPaused            ProviderStatus = "paused"
)

type SubscriptionRow struct {
	UserID               string         `gorm:"column:user_id;primaryKey"`
	StripeCustomerID     string         `gorm:"column:stripe_customer_id"`
	StripeSubscriptionID string         `gorm:"column:stripe_subscription_id"`
	PriceID              string         `gorm:"column:price_id"`
	Status               ProviderStatus `gorm:"column:status"`
	CancelAtPeriodEnd    bool           `gorm:"column:cancel_at_period_end"`
	CurrentPeriodEnd     *time.Time     `gorm:"column:current_period_end"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime:false;default:now()"`
}

func (SubscriptionRow) TableName() string {
	return "subscriptions"
}

// CheckoutLink ties an authenticated user to the Stripe objects of a completed checkout.
type CheckoutLink struct {
	UserID         string
	CustomerID     string
	SubscriptionID string
}

type SubscriptionChange struct {
	UserID            string
	CustomerID        string
	SubscriptionID    string
	PriceID           string
	Status            ProviderStatus
	CancelAtPeriodEnd bool
	CurrentPeriodEnd  time.Time
}
