package checkout

import (
	"context"
	"fmt"
	"sync"
)

type fakeProvider struct {
	mu          sync.Mutex
	customerErr error
	sessionErr  error
	customers   []CustomerParams
	sessions    []SessionParams
}

func (f *fakeProvider) CreateCustomer(ctx context.Context, params CustomerParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.customerErr != nil {
		return "", f.customerErr
	}
	f.customers = append(f.customers, params)
	return fmt.Sprintf("cus_%d", len(f.customers)), nil
}

func (f *fakeProvider) CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	f.sessions = append(f.sessions, params)
	id := fmt.Sprintf("cs_test_%d", len(f.sessions))
	return &Session{ID: id, URL: "https://checkout.stripe.com/c/pay/" + id}, nil
}
