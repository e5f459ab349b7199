package mercadopago

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
	t.Run("payment notification requires lookup", func(t *testing.T) {
		n := Normalizer{}.Normalize([]byte(`{"id":12345,"live_mode":true,"type":"payment","action":"payment.updated","data":{"id":"999"}}`))
		require.False(t, n.Ignored(), n.Reason)
		assert.Equal(t, "12345", n.ProviderEventID)
		assert.Equal(t, "payment.updated", n.EventType)
		assert.Equal(t, "999", n.Event.ExternalID)
		assert.True(t, n.Event.RequiresLookup)
		assert.Empty(t, n.Event.TargetStatus)
	})

	t.Run("numeric data id", func(t *testing.T) {
		n := Normalizer{}.Normalize([]byte(`{"id":"e1","topic":"payment","data":{"id":1001}}`))
		require.False(t, n.Ignored())
		assert.Equal(t, "1001", n.Event.ExternalID)
	})

	t.Run("merchant order ignored", func(t *testing.T) {
		n := Normalizer{}.Normalize([]byte(`{"id":"e2","type":"merchant_order","data":{"id":"5"}}`))
		assert.True(t, n.Ignored())
		assert.Equal(t, "e2", n.ProviderEventID)
	})

	t.Run("missing data id", func(t *testing.T) {
		n := Normalizer{}.Normalize([]byte(`{"id":"e3","type":"payment"}`))
		assert.True(t, n.Ignored())
	})

	t.Run("garbage", func(t *testing.T) {
		n := Normalizer{}.Normalize([]byte{0xff, 0x00})
		assert.True(t, n.Ignored())
		assert.Empty(t, n.ProviderEventID)
	})
}

func TestManifest(t *testing.T) {
	assert.Equal(t, "id:abc123;request-id:req-1;ts:1700000000;", Manifest("ABC123", "req-1", "1700000000"))
	assert.Equal(t, "id:9;ts:1;", Manifest("9", "", "1"))
}

func TestVerifier(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	v := &Verifier{Secret: []byte("mp-secret"), Tolerance: DefaultTolerance, Now: func() time.Time { return now }}
	body := []byte(`{"id":1,"type":"payment","data":{"id":"999"}}`)

	sign := func(ts string) string {
		return "ts=" + ts + ",v1=" + provider.HMACSHA256Hex([]byte("mp-secret"), []byte(Manifest("999", "req-1", ts)))
	}

	t.Run("seconds timestamp", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, sign("1700000000"))
		h.Set(RequestIDHeader, "req-1")
		assert.NoError(t, v.Verify(h, body))
	})

	t.Run("milliseconds timestamp", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, sign("1700000000123"))
		h.Set(RequestIDHeader, "req-1")
		assert.NoError(t, v.Verify(h, body))
	})

	t.Run("wrong request id", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, sign("1700000000"))
		h.Set(RequestIDHeader, "req-2")
		assert.ErrorIs(t, v.Verify(h, body), domain.ErrSignature)
	})

	t.Run("stale", func(t *testing.T) {
		h := http.Header{}
		h.Set(SignatureHeader, sign("1699990000"))
		h.Set(RequestIDHeader, "req-1")
		assert.ErrorIs(t, v.Verify(h, body), domain.ErrSignature)
	})
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer APP_USR-1", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/v1/payments/999":
			_, _ = w.Write([]byte(`{"id":999,"status":"approved","external_reference":"ord_1"}`))
		case "/v1/payments/1000":
			_, _ = w.Write([]byte(`{"id":1000,"status":"in_process","external_reference":"ord_1"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	l := NewLookup(srv.URL, "APP_USR-1", time.Second)

	pay, err := l.LookupPayment(context.Background(), "999")
	require.NoError(t, err)
	assert.True(t, pay.Known)
	assert.Equal(t, orderdomain.StatusPaid, pay.Status)
	assert.Equal(t, "999", pay.ExternalID)
	assert.Equal(t, "ord_1", pay.Reference)

	pay, err = l.LookupPayment(context.Background(), "1000")
	require.NoError(t, err)
	assert.False(t, pay.Known)

	_, err = l.LookupPayment(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrProviderCommunication)
}
