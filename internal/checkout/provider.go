package checkout

import (
	"context"
	"errors"

	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

type CustomerParams struct {
	UserID string
}

type SessionParams struct {
	CustomerID string
	PriceID    string
	Mode       Mode
	SuccessURL string
	CancelURL  string
	UserID     string
}

type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// Provider is the payment provider used to open checkout sessions.
type Provider interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (string, error)
	CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error)
}

type stripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) Provider {
	stripe.SetAppInfo(&stripe.AppInfo{
		Name:    "goaltrack-checkout",
		Version: "1.0.0",
	})
	return newStripeProvider(client.New(secretKey, nil))
}

func newStripeProvider(api *client.API) *stripeProvider {
	return &stripeProvider{api: api}
}

func (p *stripeProvider) CreateCustomer(ctx context.Context, params CustomerParams) (string, error) {
	cp := &stripe.CustomerParams{}
	cp.Context = ctx
	if params.UserID != "" {
		cp.AddMetadata("user_id", params.UserID)
	}

	customer, err := p.api.Customers.New(cp)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to create Stripe customer")
		return "", providerError(err)
	}
	return customer.ID, nil
}

func (p *stripeProvider) CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error) {
	sp := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(params.CustomerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(params.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(params.Mode)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	sp.Context = ctx
	sp.AddMetadata("price_id", params.PriceID)
	if params.UserID != "" {
		sp.ClientReferenceID = stripe.String(params.UserID)
		sp.AddMetadata("user_id", params.UserID)
		if params.Mode == ModeSubscription {
			sp.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
				Metadata: map[string]string{"user_id": params.UserID},
			}
		}
	}

	s, err := p.api.CheckoutSessions.New(sp)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to create Stripe checkout session")
		return nil, providerError(err)
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}

func providerError(err error) *ProviderError {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return &ProviderError{Message: stripeErr.Msg, Err: err}
	}
	return &ProviderError{Message: err.Error(), Err: err}
}
