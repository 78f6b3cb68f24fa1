package billing

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu   sync.Mutex
	rows map[string]SubscriptionRow
	err  error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: make(map[string]SubscriptionRow)}
}

func (m *memoryRepository) FindByUserID(ctx context.Context, userID string) (*SubscriptionRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (m *memoryRepository) FindByCustomerID(ctx context.Context, customerID string) (*SubscriptionRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, row := range m.rows {
		if row.StripeCustomerID == customerID {
			r := row
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepository) LinkCheckout(ctx context.Context, link CheckoutLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	row := m.rows[link.UserID]
	row.UserID = link.UserID
	row.StripeCustomerID = link.CustomerID
	if link.SubscriptionID != "" {
		row.StripeSubscriptionID = link.SubscriptionID
	}
	m.rows[link.UserID] = row
	return nil
}

func (m *memoryRepository) ApplyChange(ctx context.Context, change SubscriptionChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	periodEnd := change.CurrentPeriodEnd
	m.rows[change.UserID] = SubscriptionRow{
		UserID:               change.UserID,
		StripeCustomerID:     change.CustomerID,
		StripeSubscriptionID: change.SubscriptionID,
		PriceID:              change.PriceID,
		Status:               change.Status,
		CancelAtPeriodEnd:    change.CancelAtPeriodEnd,
		CurrentPeriodEnd:     &periodEnd,
	}
	return nil
}
