package clip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/payment/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		eventID string
		ignored bool
		lookup  bool
		status  orderdomain.Status
	}{
		{"approved", `{"event_id":"ev1","payment_id":"p1","merchant_reference":"ord_1","status":"approved"}`, "ev1", false, false, orderdomain.StatusPaid},
		{"numeric id and receipt", `{"id":42,"receipt_no":7788,"order_reference":"ord_2","status":"PAID"}`, "42", false, false, orderdomain.StatusPaid},
		{"declined", `{"event_id":"ev3","payment_id":"p3","status":"declined"}`, "ev3", false, false, orderdomain.StatusCancelled},
		{"chargeback", `{"event_id":"ev4","payment_id":"p4","status":"chargeback"}`, "ev4", false, false, orderdomain.StatusRefunded},
		{"pending is ignored", `{"event_id":"ev5","payment_id":"p5","status":"pending"}`, "ev5", true, false, ""},
		{"no status needs lookup", `{"event_id":"ev6","payment_id":"p6"}`, "ev6", false, true, ""},
		{"no identifiers", `{"event_id":"ev7","status":"approved"}`, "ev7", true, false, ""},
		{"not json", `approved`, "", true, false, ""},
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
			assert.Equal(t, tt.lookup, n.Event.RequiresLookup)
			assert.Equal(t, tt.status, n.Event.TargetStatus)
		})
	}
}

func TestNormalizeIdentifiers(t *testing.T) {
	n := Normalizer{}.Normalize([]byte(`{"id":42,"receipt_no":7788,"order_reference":"ord_2","status":"paid"}`))
	require.False(t, n.Ignored())
	assert.Equal(t, "7788", n.Event.ExternalID)
	assert.Equal(t, "ord_2", n.Event.CorrelationID)
	assert.Equal(t, domain.ProviderClip, n.Event.Provider)
}

func TestVerifier(t *testing.T) {
	v := NewVerifier("clip-secret")
	body := []byte(`{"event_id":"ev1"}`)

	h := http.Header{}
	h.Set(SignatureHeader, provider.HMACSHA256Hex([]byte("clip-secret"), body))
	assert.NoError(t, v.Verify(h, body))

	h.Set(SignatureHeader, provider.HMACSHA256Hex([]byte("other"), body))
	assert.ErrorIs(t, v.Verify(h, body), domain.ErrSignature)

	assert.ErrorIs(t, v.Verify(http.Header{}, body), domain.ErrSignature)
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic dG9rZW4=", r.Header.Get("Authorization"))
		if r.URL.Path != "/payments/p6" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"payment_id":"p6","status":"approved","merchant_reference":"ord_6"}`))
	}))
	defer srv.Close()

	l := NewLookup(srv.URL, "dG9rZW4=", time.Second)
	pay, err := l.LookupPayment(context.Background(), "p6")
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPaid, pay.Status)
	assert.Equal(t, "ord_6", pay.Reference)

	_, err = l.LookupPayment(context.Background(), "p7")
	assert.ErrorIs(t, err, domain.ErrProviderCommunication)
}
