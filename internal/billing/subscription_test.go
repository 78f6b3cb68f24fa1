package billing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const proPrice = "price_1RZ3C4Q2IpZFcELs42JVD0vk"

func TestStatusFromRow(t *testing.T) {
	end := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		row  *SubscriptionRow
		want SubscriptionStatus
	}{
		{name: "NoRow", row: nil, want: NotStarted{}},
		{name: "LinkedOnly", row: &SubscriptionRow{UserID: "u"}, want: NotStarted{}},
		{
			name: "Active",
			row:  &SubscriptionRow{Status: ProviderStatusActive, PriceID: proPrice, CurrentPeriodEnd: &end},
			want: Active{Plan: "Pro", PriceID: proPrice, CurrentPeriodEnd: end},
		},
		{
			name: "Trialing",
			row:  &SubscriptionRow{Status: ProviderStatusTrialing, PriceID: "price_x", CurrentPeriodEnd: &end},
			want: Active{Plan: PlanUnknown, PriceID: "price_x", CurrentPeriodEnd: end},
		},
		{
			name: "Canceling",
			row:  &SubscriptionRow{Status: ProviderStatusActive, PriceID: proPrice, CancelAtPeriodEnd: true, CurrentPeriodEnd: &end},
			want: Canceling{Plan: "Pro", PriceID: proPrice, CurrentPeriodEnd: end},
		},
		{name: "Canceled", row: &SubscriptionRow{Status: ProviderStatusCanceled, PriceID: proPrice}, want: NotStarted{}},
		{name: "PastDue", row: &SubscriptionRow{Status: ProviderStatusPastDue, PriceID: proPrice}, want: NotStarted{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromRow(tt.row))
		})
	}
}

func TestSubscriptionStatusJSON(t *testing.T) {
	end := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

	b, err := json.Marshal(NotStarted{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"not_started"}`, string(b))

	b, err = json.Marshal(Active{Plan: "Pro", PriceID: proPrice, CurrentPeriodEnd: end})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"active","plan":"Pro","priceId":"`+proPrice+`","currentPeriodEnd":"2026-11-01T00:00:00Z"}`, string(b))

	var status SubscriptionStatus = Canceling{Plan: "Pro", PriceID: proPrice, CurrentPeriodEnd: end}
	b, err = json.Marshal(status)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"state":"canceling"`)
}
