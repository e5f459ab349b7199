package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		eventID     string
		ignored     bool
		status      orderdomain.Status
		correlation string
		externalID  string
	}{
		{
			name:        "payment intent succeeded",
			payload:     `{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent","metadata":{"order_reference":"ord_1"}}}}`,
			eventID:     "evt_1",
			status:      orderdomain.StatusPaid,
			correlation: "ord_1",
			externalID:  "pi_1",
		},
		{
			name:        "checkout session completed and paid",
			payload:     `{"id":"evt_2","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","payment_intent":"pi_2","client_reference_id":"ord_2","payment_status":"paid"}}}`,
			eventID:     "evt_2",
			status:      orderdomain.StatusPaid,
			correlation: "ord_2",
			externalID:  "pi_2",
		},
		{
			name:    "checkout session completed but unpaid",
			payload: `{"id":"evt_3","type":"checkout.session.completed","data":{"object":{"id":"cs_2","object":"checkout.session","payment_status":"unpaid"}}}`,
			eventID: "evt_3",
			ignored: true,
		},
		{
			name:       "charge refunded carries payment intent",
			payload:    `{"id":"evt_4","type":"charge.refunded","data":{"object":{"id":"ch_1","object":"charge","payment_intent":"pi_3"}}}`,
			eventID:    "evt_4",
			status:     orderdomain.StatusRefunded,
			externalID: "pi_3",
		},
		{
			name:       "dispute with expanded payment intent",
			payload:    `{"id":"evt_5","type":"charge.dispute.created","data":{"object":{"id":"dp_1","object":"dispute","charge":"ch_2","payment_intent":{"id":"pi_4"}}}}`,
			eventID:    "evt_5",
			status:     orderdomain.StatusRefunded,
			externalID: "pi_4",
		},
		{
			name:        "payment failed",
			payload:     `{"id":"evt_6","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_5","object":"payment_intent","metadata":{"order_reference":"ord_5"}}}}`,
			eventID:     "evt_6",
			status:      orderdomain.StatusCancelled,
			correlation: "ord_5",
			externalID:  "pi_5",
		},
		{
			name:    "unhandled type keeps event id",
			payload: `{"id":"evt_7","type":"customer.created","data":{"object":{"id":"cus_1"}}}`,
			eventID: "evt_7",
			ignored: true,
		},
		{
			name:    "malformed json",
			payload: `{"id":`,
			ignored: true,
		},
		{
			name:    "missing object",
			payload: `{"id":"evt_8","type":"charge.succeeded"}`,
			eventID: "evt_8",
			ignored: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalizer{}.Normalize([]byte(tt.payload))
			assert.Equal(t, tt.eventID, n.ProviderEventID)
			if tt.ignored {
				assert.True(t, n.Ignored())
				assert.NotEmpty(t, n.Reason)
				return
			}
			require.False(t, n.Ignored(), n.Reason)
			assert.Equal(t, domain.ProviderStripe, n.Event.Provider)
			assert.Equal(t, tt.status, n.Event.TargetStatus)
			assert.Equal(t, tt.correlation, n.Event.CorrelationID)
			assert.Equal(t, tt.externalID, n.Event.ExternalID)
			assert.False(t, n.Event.RequiresLookup)
		})
	}
}

func TestVerifier(t *testing.T) {
	now := time.Now()
	body := []byte(`{"id":"evt_1"}`)
	v := NewVerifier("whsec_test")

	t.Run("valid", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, Sign("whsec_test", now, body))
		assert.NoError(t, v.Verify(h, body))
	})

	t.Run("tampered body", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, Sign("whsec_test", now, body))
		err := v.Verify(h, []byte(`{"id":"evt_2"}`))
		assert.True(t, errors.Is(err, domain.ErrSignature))
	})

	t.Run("wrong secret", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, Sign("whsec_other", now, body))
		assert.ErrorIs(t, v.Verify(h, body), domain.ErrSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, Sign("whsec_test", now.Add(-10*time.Minute), body))
		assert.ErrorIs(t, v.Verify(h, body), domain.ErrSignature)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(http.Header{}, body), domain.ErrSignature)
	})
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/payment_intents/pi_1":
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"succeeded","metadata":{"order_reference":"ord_1"}}`))
		case "/v1/payment_intents/pi_refunded":
			_, _ = w.Write([]byte(`{"id":"pi_refunded","object":"payment_intent","status":"succeeded","metadata":{},` +
				`"latest_charge":{"id":"ch_9","object":"charge","status":"succeeded","refunded":true,"amount_refunded":450}}`))
		case "/v1/charges/ch_1":
			_, _ = w.Write([]byte(`{"id":"ch_1","object":"charge","status":"succeeded","refunded":false,"metadata":{"order_reference":"ord_2"}}`))
		case "/v1/payment_intents/pi_slow":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent"}}`))
		}
	}))
	defer srv.Close()

	l := NewLookup(srv.URL, "sk_test", time.Second)

	pay, err := l.LookupPayment(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.True(t, pay.Known)
	assert.Equal(t, orderdomain.StatusPaid, pay.Status)
	assert.Equal(t, "ord_1", pay.Reference)

	pay, err = l.LookupPayment(context.Background(), "pi_refunded")
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusRefunded, pay.Status)
	assert.Equal(t, "refunded", pay.ProviderStatus)

	pay, err = l.LookupPayment(context.Background(), "ch_1")
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPaid, pay.Status)
	assert.Equal(t, "ord_2", pay.Reference)

	_, err = l.LookupPayment(context.Background(), "pi_missing")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.LookupPayment(ctx, "pi_slow")
	assert.ErrorIs(t, err, domain.ErrProviderCommunication)
}
