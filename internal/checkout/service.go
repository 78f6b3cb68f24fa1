package checkout

import (
	"context"
	"errors"

	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
	"github.com/saulo-duarte/goaltrack-lambda/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/saulo-duarte/goaltrack-lambda/internal/checkout"

type Service interface {
	CreateSession(ctx context.Context, req SessionRequest, userID string) (*Session, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// CreateSession opens a checkout session for a freshly created customer.
// A customer created before a failed session call is left in place.
func (s *service) CreateSession(ctx context.Context, req SessionRequest, userID string) (*Session, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "checkout.CreateSession")
	defer span.End()
	span.SetAttributes(
		attribute.String("checkout.mode", string(req.Mode)),
		attribute.String("checkout.price_id", req.PriceID),
	)

	log := config.WithContext(ctx).WithField("price_id", req.PriceID)

	customerID, err := s.provider.CreateCustomer(ctx, CustomerParams{UserID: userID})
	if err != nil {
		return nil, s.fail(span, req, err)
	}
	log = log.WithField("customer_id", customerID)

	session, err := s.provider.CreateCheckoutSession(ctx, SessionParams{
		CustomerID: customerID,
		PriceID:    req.PriceID,
		Mode:       req.Mode,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
		UserID:     userID,
	})
	if err != nil {
		log.WithError(err).Warn("Checkout session failed, customer left without a session")
		return nil, s.fail(span, req, err)
	}

	span.SetAttributes(attribute.String("checkout.session_id", session.ID))
	log.WithField("session_id", session.ID).Info("Checkout session created")
	observability.RecordCheckoutSession(string(req.Mode), observability.OutcomeSuccess)
	return session, nil
}

func (s *service) fail(span trace.Span, req SessionRequest, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	observability.RecordCheckoutSession(string(req.Mode), observability.OutcomeError)

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}
	return &ProviderError{Message: err.Error(), Err: err}
}
