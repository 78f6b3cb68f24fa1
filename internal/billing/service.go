package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/goaltrack-lambda/internal/config"
	"github.com/stripe/stripe-go/v81"
)

// ErrIgnored marks an event that was acknowledged without changing state.
var ErrIgnored = errors.New("event ignored")

type Service interface {
	Status(ctx context.Context, userID string) (SubscriptionStatus, error)
	HandleEvent(ctx context.Context, event stripe.Event) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Status(ctx context.Context, userID string) (SubscriptionStatus, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	row, err := s.repo.FindByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return NotStarted{}, nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to fetch subscription")
		return nil, errors.New("failed to fetch subscription")
	}
	return StatusFromRow(row), nil
}

func (s *service) HandleEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		return s.checkoutCompleted(ctx, event)
	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		return s.subscriptionChanged(ctx, event)
	default:
		return ErrIgnored
	}
}

func (s *service) checkoutCompleted(ctx context.Context, event stripe.Event) error {
	log := config.WithContext(ctx).WithField("event_id", event.ID)

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	userID := session.ClientReferenceID
	if userID == "" {
		userID = session.Metadata["user_id"]
	}
	if userID == "" || session.Customer == nil {
		log.WithField("session_id", session.ID).Warn("Checkout completed without a known user")
		return ErrIgnored
	}

	link := CheckoutLink{UserID: userID, CustomerID: session.Customer.ID}
	if session.Subscription != nil {
		link.SubscriptionID = session.Subscription.ID
	}
	if err := s.repo.LinkCheckout(ctx, link); err != nil {
		log.WithError(err).Error("Failed to link checkout to user")
		return err
	}

	log.WithField("user_id", userID).Info("Checkout linked to user")
	return nil
}

func (s *service) subscriptionChanged(ctx context.Context, event stripe.Event) error {
	log := config.WithContext(ctx).WithField("event_id", event.ID)

	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("decode subscription: %w", err)
	}

	var customerID string
	if sub.Customer != nil {
		customerID = sub.Customer.ID
	}

	userID := sub.Metadata["user_id"]
	if userID == "" && customerID != "" {
		row, err := s.repo.FindByCustomerID(ctx, customerID)
		switch {
		case err == nil:
			userID = row.UserID
		case errors.Is(err, ErrNotFound):
		default:
			log.WithError(err).Error("Failed to look up subscription by customer")
			return err
		}
	}
	if userID == "" {
		log.WithField("subscription_id", sub.ID).Warn("Subscription event for unknown user")
		return ErrIgnored
	}

	change := SubscriptionChange{
		UserID:            userID,
		CustomerID:        customerID,
		SubscriptionID:    sub.ID,
		PriceID:           firstPriceID(&sub),
		Status:            ProviderStatus(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		CurrentPeriodEnd:  time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
	}
	if err := s.repo.ApplyChange(ctx, change); err != nil {
		log.WithError(err).Error("Failed to store subscription change")
		return err
	}

	log.WithFields(map[string]interface{}{
		"user_id": userID,
		"status":  change.Status,
	}).Info("Subscription updated")
	return nil
}

func firstPriceID(sub *stripe.Subscription) string {
	if sub.Items == nil {
		return ""
	}
	for _, item := range sub.Items.Data {
		if item != nil && item.Price != nil {
			return item.Price.ID
		}
	}
	return ""
}
