package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/payment/provider/conekta"
	"github.com/dwikikusuma/storefront/internal/payment/provider/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNormalizer struct {
	n     domain.Normalization
	panic bool
}

func (s stubNormalizer) Provider() domain.Provider { return domain.ProviderMercadoPago }

func (s stubNormalizer) Normalize([]byte) domain.Normalization {
	if s.panic {
		panic("boom")
	}
	return s.n
}

type stubVerifier struct{ err error }

func (s stubVerifier) Verify(http.Header, []byte) error { return s.err }

type stubLookup struct {
	pay   domain.Payment
	err   error
	calls int
}

func (s *stubLookup) LookupPayment(ctx context.Context, id string) (domain.Payment, error) {
	s.calls++
	return s.pay, s.err
}

func lookupEvent() domain.Normalization {
	return domain.Normalization{
		ProviderEventID: "1",
		EventType:       "payment.updated",
		Event: &domain.PaymentEvent{
			Provider:        domain.ProviderMercadoPago,
			ProviderEventID: "1",
			ExternalID:      "999",
			RequiresLookup:  true,
		},
	}
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	mp := domain.ProviderMercadoPago

	t.Run("unknown provider", func(t *testing.T) {
		in := NewIntake(nil, Options{}, nil)
		_, err := in.Ingest(ctx, "paypal", nil, nil)
		assert.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("bad signature", func(t *testing.T) {
		in := NewIntake(map[domain.Provider]Adapter{mp: {
			Normalizer: stubNormalizer{n: lookupEvent()},
			Verifier:   stubVerifier{err: domain.ErrSignature},
		}}, Options{}, nil)
		_, err := in.Ingest(ctx, mp, nil, nil)
		assert.ErrorIs(t, err, domain.ErrSignature)
	})

	t.Run("unsigned refused unless allowed", func(t *testing.T) {
		adapters := map[domain.Provider]Adapter{mp: {Normalizer: stubNormalizer{n: domain.Ignore("1", "", "x")}}}
		_, err := NewIntake(adapters, Options{}, nil).Ingest(ctx, mp, nil, nil)
		assert.ErrorIs(t, err, domain.ErrSignature)

		n, err := NewIntake(adapters, Options{AllowUnsigned: true}, nil).Ingest(ctx, mp, nil, nil)
		require.NoError(t, err)
		assert.True(t, n.Ignored())
	})

	t.Run("lookup fills status and reference", func(t *testing.T) {
		lk := &stubLookup{pay: domain.Payment{ExternalID: "999", Reference: "ord_1", ProviderStatus: "approved", Status: orderdomain.StatusPaid, Known: true}}
		in := NewIntake(map[domain.Provider]Adapter{mp: {
			Normalizer: stubNormalizer{n: lookupEvent()},
			Verifier:   stubVerifier{},
			Lookup:     lk,
		}}, Options{}, nil)

		n, err := in.Ingest(ctx, mp, nil, nil)
		require.NoError(t, err)
		require.False(t, n.Ignored())
		assert.Equal(t, orderdomain.StatusPaid, n.Event.TargetStatus)
		assert.Equal(t, "ord_1", n.Event.CorrelationID)
		assert.False(t, n.Event.RequiresLookup)
		assert.Equal(t, 1, lk.calls)
	})

	t.Run("non transition status ignored", func(t *testing.T) {
		lk := &stubLookup{pay: domain.Payment{ProviderStatus: "in_process"}}
		in := NewIntake(map[domain.Provider]Adapter{mp: {Normalizer: stubNormalizer{n: lookupEvent()}, Lookup: lk}}, Options{AllowUnsigned: true}, nil)
		n, err := in.Ingest(ctx, mp, nil, nil)
		require.NoError(t, err)
		assert.True(t, n.Ignored())
		assert.Equal(t, "1", n.ProviderEventID)
	})

	t.Run("lookup failure fails closed", func(t *testing.T) {
		lk := &stubLookup{err: errors.New("dial tcp: timeout")}
		in := NewIntake(map[domain.Provider]Adapter{mp: {Normalizer: stubNormalizer{n: lookupEvent()}, Lookup: lk}}, Options{AllowUnsigned: true}, nil)
		_, err := in.Ingest(ctx, mp, nil, nil)
		assert.ErrorIs(t, err, domain.ErrProviderCommunication)
	})

	t.Run("payment unknown to provider ignored", func(t *testing.T) {
		lk := &stubLookup{err: domain.ErrPaymentNotFound}
		in := NewIntake(map[domain.Provider]Adapter{mp: {Normalizer: stubNormalizer{n: lookupEvent()}, Lookup: lk}}, Options{AllowUnsigned: true}, nil)
		n, err := in.Ingest(ctx, mp, nil, nil)
		require.NoError(t, err)
		assert.True(t, n.Ignored())
	})

	t.Run("normalizer panic is contained", func(t *testing.T) {
		in := NewIntake(map[domain.Provider]Adapter{mp: {Normalizer: stubNormalizer{panic: true}}}, Options{AllowUnsigned: true}, nil)
		n, err := in.Ingest(ctx, mp, nil, nil)
		require.NoError(t, err)
		assert.True(t, n.Ignored())
		assert.Contains(t, n.Reason, "panic")
	})
}

func statusEvent(target orderdomain.Status) domain.Normalization {
	return domain.Normalization{
		ProviderEventID: "evt_1",
		EventType:       "payment.updated",
		Event: &domain.PaymentEvent{
			Provider:        domain.ProviderMercadoPago,
			ProviderEventID: "evt_1",
			ExternalID:      "pay_1",
			TargetStatus:    target,
		},
	}
}

func TestIngest_ConfirmsClaimedStatus(t *testing.T) {
	ctx := context.Background()
	mp := domain.ProviderMercadoPago
	paid := domain.Payment{ExternalID: "pay_1", Reference: "ord_1", ProviderStatus: "approved", Status: orderdomain.StatusPaid, Known: true}
	refunded := domain.Payment{ExternalID: "pay_1", ProviderStatus: "refunded", Status: orderdomain.StatusRefunded, Known: true}
	pending := domain.Payment{ExternalID: "pay_1", ProviderStatus: "in_process"}

	tests := []struct {
		name      string
		claim     orderdomain.Status
		lookup    *stubLookup
		ignored   bool
		err       error
		wantCalls int
	}{
		{"paid confirmed", orderdomain.StatusPaid, &stubLookup{pay: paid}, false, nil, 1},
		{"paid backed by later refund", orderdomain.StatusPaid, &stubLookup{pay: refunded}, false, nil, 1},
		{"refund confirmed", orderdomain.StatusRefunded, &stubLookup{pay: refunded}, false, nil, 1},
		{"paid claim while provider pending", orderdomain.StatusPaid, &stubLookup{pay: pending}, true, nil, 1},
		{"refund claim while provider paid", orderdomain.StatusRefunded, &stubLookup{pay: paid}, true, nil, 1},
		{"payment unknown to provider", orderdomain.StatusPaid, &stubLookup{err: domain.ErrPaymentNotFound}, true, nil, 1},
		{"provider down", orderdomain.StatusPaid, &stubLookup{err: errors.New("connection reset")}, false, domain.ErrProviderCommunication, 1},
		{"cancellation taken from payload", orderdomain.StatusCancelled, &stubLookup{pay: paid}, false, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewIntake(map[domain.Provider]Adapter{mp: {
				Normalizer: stubNormalizer{n: statusEvent(tt.claim)},
				Lookup:     tt.lookup,
			}}, Options{AllowUnsigned: true}, nil)

			n, err := in.Ingest(ctx, mp, nil, nil)
			assert.Equal(t, tt.wantCalls, tt.lookup.calls)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ignored, n.Ignored(), n.Reason)
			assert.Equal(t, "evt_1", n.ProviderEventID)
			if !tt.ignored {
				assert.Equal(t, tt.claim, n.Event.TargetStatus)
			}
		})
	}
}

func TestIngest_ConfirmsThroughProviderLookups(t *testing.T) {
	ctx := context.Background()
	paid := domain.Payment{ProviderStatus: "paid", Status: orderdomain.StatusPaid, Known: true}

	tests := []struct {
		name       string
		provider   domain.Provider
		normalizer domain.Normalizer
		body       string
		externalID string
	}{
		{
			name:       "stripe payment intent succeeded",
			provider:   domain.ProviderStripe,
			normalizer: stripe.Normalizer{},
			body:       `{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent","metadata":{"order_reference":"ord_1"}}}}`,
			externalID: "pi_1",
		},
		{
			name:       "conekta order paid",
			provider:   domain.ProviderConekta,
			normalizer: conekta.Normalizer{},
			body:       `{"id":"evt_2","type":"order.paid","data":{"object":{"id":"ord_2c","object":"order","metadata":{"order_reference":"ord_2"}}}}`,
			externalID: "ord_2c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lk := &recordingLookup{pay: paid}
			in := NewIntake(map[domain.Provider]Adapter{tt.provider: {Normalizer: tt.normalizer, Lookup: lk}}, Options{AllowUnsigned: true}, nil)

			n, err := in.Ingest(ctx, tt.provider, nil, []byte(tt.body))
			require.NoError(t, err)
			require.False(t, n.Ignored(), n.Reason)
			assert.Equal(t, []string{tt.externalID}, lk.ids)
		})
	}
}

type recordingLookup struct {
	pay domain.Payment
	ids []string
}

func (r *recordingLookup) LookupPayment(ctx context.Context, id string) (domain.Payment, error) {
	r.ids = append(r.ids, id)
	return r.pay, nil
}
