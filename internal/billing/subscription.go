package billing

import (
	"encoding/json"
	"time"
)

// SubscriptionStatus is one of NotStarted, Active or Canceling.
type SubscriptionStatus interface {
	State() string
	isSubscriptionStatus()
}

type NotStarted struct{}

type Active struct {
	Plan             string
	PriceID          string
	CurrentPeriodEnd time.Time
}

// Canceling is an active subscription that ends at CurrentPeriodEnd.
type Canceling struct {
	Plan             string
	PriceID          string
	CurrentPeriodEnd time.Time
}

func (NotStarted) State() string { return "not_started" }
func (Active) State() string     { return "active" }
func (Canceling) State() string  { return "canceling" }

func (NotStarted) isSubscriptionStatus() {}
func (Active) isSubscriptionStatus()     {}
func (Canceling) isSubscriptionStatus()  {}

type periodJSON struct {
	State            string    `json:"state"`
	Plan             string    `json:"plan"`
	PriceID          string    `json:"priceId"`
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd"`
}

func (s NotStarted) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		State string `json:"state"`
	}{State: s.State()})
}

func (s Active) MarshalJSON() ([]byte, error) {
	return json.Marshal(periodJSON{State: s.State(), Plan: s.Plan, PriceID: s.PriceID, CurrentPeriodEnd: s.CurrentPeriodEnd})
}

func (s Canceling) MarshalJSON() ([]byte, error) {
	return json.Marshal(periodJSON{State: s.State(), Plan: s.Plan, PriceID: s.PriceID, CurrentPeriodEnd: s.CurrentPeriodEnd})
}

// StatusFromRow derives the caller-facing status. Anything that is not
// active or trialing counts as not started.
func StatusFromRow(row *SubscriptionRow) SubscriptionStatus {
	if row == nil {
		return NotStarted{}
	}

	var periodEnd time.Time
	if row.CurrentPeriodEnd != nil {
		periodEnd = row.CurrentPeriodEnd.UTC()
	}

	switch row.Status {
	case ProviderStatusActive, ProviderStatusTrialing:
		if row.CancelAtPeriodEnd {
			return Canceling{Plan: PlanName(row.PriceID), PriceID: row.PriceID, CurrentPeriodEnd: periodEnd}
		}
		return Active{Plan: PlanName(row.PriceID), PriceID: row.PriceID, CurrentPeriodEnd: periodEnd}
	case ProviderStatusPastDue, ProviderStatusCanceled, ProviderStatusIncomplete,
		ProviderStatusIncompleteExpired, ProviderStatusUnpaid, ProviderStatusPaused:
		return NotStarted{}
	default:
		return NotStarted{}
	}
}
