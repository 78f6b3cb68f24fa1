package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("shutdown tracer provider: %v", err)
		}
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func attributesToMap(attrs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

var validRequest = SessionRequest{
	PriceID:    "price_pro",
	SuccessURL: "https://app.example/success",
	CancelURL:  "https://app.example/cancel",
	Mode:       ModeSubscription,
}

func TestCreateSession(t *testing.T) {
	exporter := setupTestTracer(t)
	provider := &fakeProvider{}
	svc := NewService(provider)

	session, err := svc.CreateSession(context.Background(), validRequest, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.NotEmpty(t, session.URL)

	require.Len(t, provider.customers, 1)
	require.Len(t, provider.sessions, 1)
	assert.Equal(t, SessionParams{
		CustomerID: "cus_1",
		PriceID:    "price_pro",
		Mode:       ModeSubscription,
		SuccessURL: validRequest.SuccessURL,
		CancelURL:  validRequest.CancelURL,
		UserID:     "user-1",
	}, provider.sessions[0])

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "checkout.CreateSession", spans[0].Name)
	attrs := attributesToMap(spans[0].Attributes)
	assert.Equal(t, "subscription", attrs["checkout.mode"])
	assert.Equal(t, "price_pro", attrs["checkout.price_id"])
	assert.Equal(t, "cs_test_1", attrs["checkout.session_id"])
}

func TestCreateSessionFreshCustomerEachTime(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewService(provider)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSession(context.Background(), validRequest, "")
		require.NoError(t, err)
	}

	assert.Len(t, provider.customers, 3)
	assert.Equal(t, "cus_3", provider.sessions[2].CustomerID)
}

func TestCreateSessionProviderFailure(t *testing.T) {
	t.Run("Customer", func(t *testing.T) {
		exporter := setupTestTracer(t)
		provider := &fakeProvider{customerErr: &ProviderError{Message: "Invalid API Key provided"}}

		session, err := NewService(provider).CreateSession(context.Background(), validRequest, "")
		assert.Nil(t, session)
		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "Invalid API Key provided", providerErr.Message)
		assert.Empty(t, provider.sessions)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
	})

	t.Run("SessionKeepsCustomer", func(t *testing.T) {
		provider := &fakeProvider{sessionErr: &ProviderError{Message: "No such price: 'price_pro'"}}

		_, err := NewService(provider).CreateSession(context.Background(), validRequest, "")
		require.Error(t, err)
		assert.Equal(t, "No such price: 'price_pro'", err.Error())
		assert.Len(t, provider.customers, 1)
	})

	t.Run("PlainError", func(t *testing.T) {
		provider := &fakeProvider{sessionErr: errors.New("connection reset")}

		_, err := NewService(provider).CreateSession(context.Background(), validRequest, "")
		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "connection reset", providerErr.Message)
	})
}
