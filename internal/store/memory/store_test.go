package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	customerapp "github.com/dwikikusuma/storefront/internal/customer/app"
	customerdomain "github.com/dwikikusuma/storefront/internal/customer/domain"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	reconcileapp "github.com/dwikikusuma/storefront/internal/reconcile/app"
	reconciledomain "github.com/dwikikusuma/storefront/internal/reconcile/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo(t *testing.T) {
	ctx := context.Background()
	repo := New().Products()

	for _, sku := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, catalogdomain.Product{SKU: sku, Name: "Shirt " + sku, Status: catalogdomain.ProductActive})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, catalogdomain.Product{SKU: "A", Name: "dup"})
	assert.ErrorIs(t, err, catalogapp.ErrInvalidInput)

	page, next, err := repo.List(ctx, "shirt", 2, "")
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotEmpty(t, next)

	rest, next, err := repo.List(ctx, "shirt", 2, next)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.Empty(t, next)

	_, _, err = repo.List(ctx, "", 2, "not-a-uuid")
	assert.ErrorIs(t, err, catalogapp.ErrInvalidInput)

	p, err := repo.GetBySKU(ctx, "B")
	require.NoError(t, err)
	p, err = repo.SetStatus(ctx, p.ID, catalogdomain.ProductArchived)
	require.NoError(t, err)
	assert.False(t, p.Orderable())

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, catalogapp.ErrNotFound)
}

func TestCustomerRepo(t *testing.T) {
	ctx := context.Background()
	repo := New().Customers()

	c, err := repo.Create(ctx, customerdomain.Customer{Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	_, err = repo.Create(ctx, customerdomain.Customer{Email: "ana@example.com"})
	assert.ErrorIs(t, err, customerapp.ErrAlreadyExists)

	updated, err := repo.UpdateProfile(ctx, c.ID, customerdomain.Profile{City: "CDMX"})
	require.NoError(t, err)
	assert.Equal(t, "CDMX", updated.Profile.City)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, customerapp.ErrNotFound)
}

func order(number string) orderdomain.Order {
	now := time.Now().UTC()
	return orderdomain.Order{
		ID:             "id-" + number,
		Number:         number,
		Reference:      "ord_" + number,
		CustomerEmail:  "ana@example.com",
		Provider:       "stripe",
		Status:         orderdomain.StatusPending,
		SubTotalAmount: 100,
		TotalAmount:    100,
		OrderItems:     []orderdomain.OrderItem{{ProductID: "p1", UnitAmount: 50, Quantity: 2, LineTotalAmount: 100}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestOrderRepo_CreateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	st := New()
	repo := st.Orders()

	_, err := repo.CreateOrderTx(ctx, order("N1"))
	require.NoError(t, err)

	dup := order("N1")
	dup.ID, dup.Reference = "other", "ord_other"
	_, err = repo.CreateOrderTx(ctx, dup)
	assert.ErrorIs(t, err, orderapp.ErrDuplicateNumber)

	bad := order("N2")
	bad.OrderItems[0].LineTotalAmount = 99
	_, err = repo.CreateOrderTx(ctx, bad)
	assert.Error(t, err)

	_, err = repo.GetByNumber(ctx, "N2")
	assert.ErrorIs(t, err, orderapp.ErrNotFound)
	assert.Equal(t, 1, st.Counts()["orders"])
	assert.Equal(t, 1, st.Counts()["payment_correlations"])
}

func TestOrderRepo_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := New().Orders()
	_, err := repo.CreateOrderTx(ctx, order("N1"))
	require.NoError(t, err)

	o, err := repo.GetByID(ctx, "id-N1")
	require.NoError(t, err)
	o.OrderItems[0].Quantity = 99

	again, err := repo.GetByID(ctx, "id-N1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), again.OrderItems[0].Quantity)
}

func TestReconcileStore_RollbackAndConflicts(t *testing.T) {
	ctx := context.Background()
	st := New()
	_, err := st.Orders().CreateOrderTx(ctx, order("N1"))
	require.NoError(t, err)
	rs := st.Reconcile()

	boom := errors.New("boom")
	err = rs.InTx(ctx, func(tx reconcileapp.Tx) error {
		o, err := tx.LockOrder(ctx, "stripe", "ord_N1")
		require.NoError(t, err)
		require.NoError(t, tx.UpdateStatus(ctx, o.ID, orderdomain.StatusPaid, time.Now()))
		_, err = tx.RecordEvent(ctx, reconciledomain.LedgerEntry{Provider: "stripe", ProviderEventID: "e1", OrderID: o.ID})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	o, err := st.Orders().GetByID(ctx, "id-N1")
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPending, o.Status)
	assert.Equal(t, 0, st.Counts()["processed_events"])

	err = rs.InTx(ctx, func(tx reconcileapp.Tx) error {
		if _, err := tx.LockOrder(ctx, "stripe", "pi_unknown"); !errors.Is(err, reconcileapp.ErrOrderNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		inserted, err := tx.RecordEvent(ctx, reconciledomain.LedgerEntry{Provider: "stripe", ProviderEventID: "e1"})
		require.NoError(t, err)
		require.True(t, inserted)
		inserted, err = tx.RecordEvent(ctx, reconciledomain.LedgerEntry{Provider: "stripe", ProviderEventID: "e1"})
		require.NoError(t, err)
		require.False(t, inserted)
		require.NoError(t, tx.AttachCorrelation(ctx, "stripe", "pi_1", "id-N1"))
		require.NoError(t, tx.AttachCorrelation(ctx, "stripe", "pi_1", "someone-else"))
		return tx.RecordConflict(ctx, reconciledomain.ConflictRecord{Provider: "stripe", ProviderEventID: "e1", OrderID: "id-N1"})
	})
	require.NoError(t, err)

	err = rs.InTx(ctx, func(tx reconcileapp.Tx) error {
		o, err := tx.LockOrder(ctx, "stripe", "pi_1")
		require.NoError(t, err)
		assert.Equal(t, "id-N1", o.ID)
		return nil
	})
	require.NoError(t, err)

	open, err := rs.ListConflicts(ctx, false, 10)
	require.NoError(t, err)
	require.Len(t, open, 1)

	_, err = rs.ResolveConflict(ctx, open[0].ID, time.Now())
	require.NoError(t, err)
	open, err = rs.ListConflicts(ctx, false, 10)
	require.NoError(t, err)
	assert.Empty(t, open)
	all, err := rs.ListConflicts(ctx, true, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUnavailable(t *testing.T) {
	st := New()
	st.SetUnavailable(ErrUnavailable)
	assert.ErrorIs(t, st.Ping(context.Background()), ErrUnavailable)
	_, err := st.Customers().GetByEmail(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrUnavailable)

	st.SetUnavailable(nil)
	assert.NoError(t, st.Ping(context.Background()))
}
