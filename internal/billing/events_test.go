package billing

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stripe/stripe-go/v81"
)

func eventJSON(t *testing.T, id string, eventType stripe.EventType, object string) []byte {
	t.Helper()
	raw := fmt.Sprintf(`{"id":%q,"object":"event","type":%q,"api_version":"2024-06-20","data":{"object":%s}}`, id, eventType, object)
	if !json.Valid([]byte(raw)) {
		t.Fatalf("invalid event json: %s", raw)
	}
	return []byte(raw)
}

func testEvent(t *testing.T, id string, eventType stripe.EventType, object string) stripe.Event {
	t.Helper()
	var event stripe.Event
	if err := json.Unmarshal(eventJSON(t, id, eventType, object), &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	return event
}

const completedSession = `{"id":"cs_1","object":"checkout.session","client_reference_id":"user-1","customer":"cus_1","subscription":"sub_1","mode":"subscription"}`

func subscriptionObject(metadataUser, status string, cancel bool) string {
	metadata := `{}`
	if metadataUser != "" {
		metadata = fmt.Sprintf(`{"user_id":%q}`, metadataUser)
	}
	return fmt.Sprintf(`{"id":"sub_1","object":"subscription","customer":"cus_1","status":%q,"cancel_at_period_end":%t,"current_period_end":1793491200,"metadata":%s,"items":{"object":"list","data":[{"id":"si_1","object":"subscription_item","price":{"id":%q,"object":"price"}}]}}`,
		status, cancel, metadata, proPrice)
}
