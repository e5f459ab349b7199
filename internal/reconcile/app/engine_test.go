package app_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	customerapp "github.com/dwikikusuma/storefront/internal/customer/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	orderadapter "github.com/dwikikusuma/storefront/internal/order/infra/adapter"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/reconcile/app"
	"github.com/dwikikusuma/storefront/internal/reconcile/domain"
	"github.com/dwikikusuma/storefront/internal/store/memory"
	"github.com/dwikikusuma/storefront/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memory.Store
	orders   *orderapp.Service
	engine   *app.Engine
	recorder *events.Recorder
	order    orderdomain.Order
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := memory.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog := catalogapp.NewService(st.Products())
	p, err := catalog.CreateProduct(ctx, catalogapp.CreateProductInput{SKU: "TEE-1", Name: "Tee", Currency: "MXN", Amount: 900})
	require.NoError(t, err)

	orders := orderapp.NewService(st.Orders(),
		orderadapter.NewCustomerServiceResolver(customerapp.NewService(st.Customers())),
		orderadapter.NewCheckoutPricer(checkoutapp.NewService(checkoutadapter.NewCatalogServiceReader(catalog), 2)),
		nil, log)
	o, err := orders.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		CustomerEmail: "ana@example.com",
		Provider:      "mercadopago",
		Items:         []orderdomain.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	rec := &events.Recorder{}
	return &fixture{
		store:    st,
		orders:   orders,
		engine:   app.NewEngine(st.Reconcile(), rec, log, app.WithTimeout(time.Second)),
		recorder: rec,
		order:    o,
	}
}

func (f *fixture) event(id string, to orderdomain.Status) paymentdomain.PaymentEvent {
	return paymentdomain.PaymentEvent{
		Provider:        paymentdomain.ProviderMercadoPago,
		ProviderEventID: id,
		EventType:       "payment.updated",
		CorrelationID:   f.order.Reference,
		TargetStatus:    to,
	}
}

func (f *fixture) status(t *testing.T) orderdomain.Status {
	t.Helper()
	o, err := f.orders.GetOrder(context.Background(), f.order.ID)
	require.NoError(t, err)
	return o.Status
}

func (f *fixture) ledger(t *testing.T) []domain.LedgerEntry {
	t.Helper()
	entries, err := f.store.Reconcile().Ledger(context.Background())
	require.NoError(t, err)
	return entries
}

func TestApply_PaidThenRedelivered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := f.event("evt_1", orderdomain.StatusPaid)

	out, err := f.engine.Apply(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, domain.Applied(orderdomain.StatusPending, orderdomain.StatusPaid).String(), out.String())
	assert.False(t, out.Duplicate)
	assert.Equal(t, orderdomain.StatusPaid, f.status(t))

	again, err := f.engine.Apply(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, domain.KindApplied, again.Kind)
	assert.Equal(t, orderdomain.StatusPaid, again.From)
	assert.Equal(t, orderdomain.StatusPaid, again.To)
	assert.True(t, again.Duplicate)

	assert.Equal(t, orderdomain.StatusPaid, f.status(t))
	require.Len(t, f.ledger(t), 1)
	assert.Equal(t, "evt_1", f.ledger(t)[0].ProviderEventID)

	recorded := f.recorder.Snapshot()
	require.Len(t, recorded, 1)
	change := recorded[0].Payload.(orderapp.StatusChange)
	assert.Equal(t, f.order.Number, change.Number)
	assert.Equal(t, "evt_1", change.EventID)
	assert.Equal(t, "mercadopago", change.Source)
}

func TestApply_RefundBeforePaymentIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := f.event("evt_r", orderdomain.StatusRefunded)

	out, err := f.engine.Apply(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, "Conflict(pending, refunded)", out.String())
	assert.Equal(t, orderdomain.StatusPending, f.status(t))

	conflicts, err := f.engine.Conflicts(ctx, false, 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, f.order.ID, conflicts[0].OrderID)
	assert.Equal(t, orderdomain.StatusRefunded, conflicts[0].Attempted)

	again, err := f.engine.Apply(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, domain.KindConflict, again.Kind)
	assert.True(t, again.Duplicate)

	conflicts, err = f.engine.Conflicts(ctx, false, 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
	assert.Len(t, f.ledger(t), 1)
	assert.Empty(t, f.recorder.Snapshot())

	resolved, err := f.engine.ResolveConflict(ctx, conflicts[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, resolved.ResolvedAt)

	open, err := f.engine.Conflicts(ctx, false, 0)
	require.NoError(t, err)
	assert.Empty(t, open)

	_, err = f.engine.ResolveConflict(ctx, 999)
	assert.ErrorIs(t, err, app.ErrConflictNotFound)
}

func TestApply_StateMachine(t *testing.T) {
	const (
		paid      = orderdomain.StatusPaid
		cancelled = orderdomain.StatusCancelled
		refunded  = orderdomain.StatusRefunded
	)
	tests := []struct {
		name string
		path []orderdomain.Status
		want []domain.Kind
		end  orderdomain.Status
	}{
		{"pending to cancelled", []orderdomain.Status{cancelled}, []domain.Kind{domain.KindApplied}, cancelled},
		{"paid to refunded", []orderdomain.Status{paid, refunded}, []domain.Kind{domain.KindApplied, domain.KindApplied}, refunded},
		{"paid to cancelled is not automatic", []orderdomain.Status{paid, cancelled}, []domain.Kind{domain.KindApplied, domain.KindConflict}, paid},
		{"cancelled is terminal", []orderdomain.Status{cancelled, paid}, []domain.Kind{domain.KindApplied, domain.KindConflict}, cancelled},
		{"refunded is terminal", []orderdomain.Status{paid, refunded, paid}, []domain.Kind{domain.KindApplied, domain.KindApplied, domain.KindConflict}, refunded},
		{"same status with a new event id", []orderdomain.Status{paid, paid}, []domain.Kind{domain.KindApplied, domain.KindApplied}, paid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			for i, to := range tt.path {
				out, err := f.engine.Apply(context.Background(), f.event(fmt.Sprintf("evt_%d", i), to))
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], out.Kind, "step %d: %s", i, out)
			}
			assert.Equal(t, tt.end, f.status(t))
			assert.Len(t, f.ledger(t), len(tt.path))
		})
	}
}

func TestApply_ResolvesThroughAttachedPaymentID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	paidEv := f.event("evt_1", orderdomain.StatusPaid)
	paidEv.ExternalID = "999"
	_, err := f.engine.Apply(ctx, paidEv)
	require.NoError(t, err)

	refund := paymentdomain.PaymentEvent{
		Provider:        paymentdomain.ProviderMercadoPago,
		ProviderEventID: "evt_2",
		ExternalID:      "999",
		TargetStatus:    orderdomain.StatusRefunded,
	}
	out, err := f.engine.Apply(ctx, refund)
	require.NoError(t, err)
	assert.Equal(t, "Applied(paid, refunded)", out.String())

	other := refund
	other.Provider = paymentdomain.ProviderStripe
	other.ProviderEventID = "evt_3"
	out, err = f.engine.Apply(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, domain.KindNotFound, out.Kind)
}

func TestApply_IgnoredAndNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		ev   paymentdomain.PaymentEvent
		want domain.Kind
	}{
		{"missing event id", f.event("", orderdomain.StatusPaid), domain.KindIgnored},
		{"pending is not a target", f.event("e1", orderdomain.StatusPending), domain.KindIgnored},
		{"unknown target", f.event("e2", "shipped"), domain.KindIgnored},
		{"unverified", func() paymentdomain.PaymentEvent {
			ev := f.event("e3", "")
			ev.RequiresLookup = true
			return ev
		}(), domain.KindIgnored},
		{"no correlation", func() paymentdomain.PaymentEvent {
			ev := f.event("e4", orderdomain.StatusPaid)
			ev.CorrelationID = ""
			return ev
		}(), domain.KindIgnored},
		{"unknown reference", func() paymentdomain.PaymentEvent {
			ev := f.event("e5", orderdomain.StatusPaid)
			ev.CorrelationID = "ord_unknown"
			return ev
		}(), domain.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.engine.Apply(ctx, tt.ev)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Kind)
		})
	}
	assert.Equal(t, orderdomain.StatusPending, f.status(t))
	assert.Empty(t, f.ledger(t))
}

func TestApply_StoreFailureRollsBack(t *testing.T) {
	t.Run("failure after status write", func(t *testing.T) {
		f := newFixture(t)
		f.store.InjectFault(memory.FaultAfterStatusWrite, errors.New("connection reset"))

		_, err := f.engine.Apply(context.Background(), f.event("evt_1", orderdomain.StatusPaid))
		assert.ErrorIs(t, err, app.ErrStoreFailure)
		assert.NotErrorIs(t, err, app.ErrStoreUnavailable)
		assert.Equal(t, orderdomain.StatusPending, f.status(t))
		assert.Empty(t, f.ledger(t))
		assert.Empty(t, f.recorder.Snapshot())

		f.store.InjectFault(memory.FaultAfterStatusWrite, nil)
		out, err := f.engine.Apply(context.Background(), f.event("evt_1", orderdomain.StatusPaid))
		require.NoError(t, err)
		assert.False(t, out.Duplicate)
		assert.Equal(t, orderdomain.StatusPaid, f.status(t))
	})

	t.Run("store unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.store.SetUnavailable(errors.New("dial tcp: i/o timeout"))
		_, err := f.engine.Apply(context.Background(), f.event("evt_1", orderdomain.StatusPaid))
		assert.ErrorIs(t, err, app.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, app.ErrStoreFailure)
	})

	t.Run("caller gone", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.engine.Apply(ctx, f.event("evt_1", orderdomain.StatusPaid))
		assert.ErrorIs(t, err, app.ErrStoreUnavailable)
	})
}

func TestApply_ConcurrentDeliveriesApplyOnce(t *testing.T) {
	f := newFixture(t)
	ev := f.event("evt_dup", orderdomain.StatusPaid)

	const n = 16
	outcomes := make(chan domain.Outcome, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.engine.Apply(context.Background(), ev)
			if assert.NoError(t, err) {
				outcomes <- out
			}
		}()
	}
	wg.Wait()
	close(outcomes)

	fresh := 0
	for out := range outcomes {
		assert.Equal(t, domain.KindApplied, out.Kind)
		if !out.Duplicate {
			fresh++
			assert.True(t, out.Changed())
		}
	}
	assert.Equal(t, 1, fresh)
	assert.Len(t, f.ledger(t), 1)
	assert.Len(t, f.recorder.Snapshot(), 1)
}
