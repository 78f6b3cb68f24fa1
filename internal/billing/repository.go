package billing

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("subscription not found")

type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*SubscriptionRow, error)
	FindByCustomerID(ctx context.Context, customerID string) (*SubscriptionRow, error)
	LinkCheckout(ctx context.Context, link CheckoutLink) error
	ApplyChange(ctx context.Context, change SubscriptionChange) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*SubscriptionRow, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *repository) FindByCustomerID(ctx context.Context, customerID string) (*SubscriptionRow, error) {
	return r.findOne(ctx, "stripe_customer_id = ?", customerID)
}

func (r *repository) findOne(ctx context.Context, query string, arg string) (*SubscriptionRow, error) {
	var row SubscriptionRow
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *repository) LinkCheckout(ctx context.Context, link CheckoutLink) error {
	row := SubscriptionRow{
		UserID:               link.UserID,
		StripeCustomerID:     link.CustomerID,
		StripeSubscriptionID: link.SubscriptionID,
	}
	columns := []string{"stripe_customer_id"}
	if link.SubscriptionID != "" {
		columns = append(columns, "stripe_subscription_id")
	}

	return r.db.WithContext(ctx).
		Select("user_id", "stripe_customer_id", "stripe_subscription_id").
		Clauses(upsert(columns)).
		Create(&row).Error
}

func (r *repository) ApplyChange(ctx context.Context, change SubscriptionChange) error {
	periodEnd := change.CurrentPeriodEnd
	row := SubscriptionRow{
		UserID:               change.UserID,
		StripeCustomerID:     change.CustomerID,
		StripeSubscriptionID: change.SubscriptionID,
		PriceID:              change.PriceID,
		Status:               change.Status,
		CancelAtPeriodEnd:    change.CancelAtPeriodEnd,
		CurrentPeriodEnd:     &periodEnd,
	}
	columns := []string{
		"stripe_customer_id", "stripe_subscription_id", "price_id",
		"status", "cancel_at_period_end", "current_period_end",
	}

	return r.db.WithContext(ctx).
		Omit("updated_at").
		Clauses(upsert(columns)).
		Create(&row).Error
}

func upsert(columns []string) clause.OnConflict {
	set := clause.AssignmentColumns(columns)
	set = append(set, clause.Assignment{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("now()")})
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: set,
	}
}
