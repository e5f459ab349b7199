package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
	"github.com/dwikikusuma/storefront/internal/bootstrap"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/internal/store/memory"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
)

const catalogYAML = `
products:
  - sku: TEE-BLK-M
    name: Black tee
    currency: MXN
    amount: 29900
  - sku: MUG-01
    name: Mug
    currency: MXN
    amount: 15000
    status: draft
`

type fakeOrders struct {
	orderv1.OrderServiceClient
	cancelled *orderv1.CancelOrderRequest
}

func (f *fakeOrders) GetOrder(_ context.Context, in *orderv1.GetOrderRequest, _ ...grpc.CallOption) (*orderv1.GetOrderResponse, error) {
	return &orderv1.GetOrderResponse{Order: &orderv1.Order{Number: in.GetNumber(), Status: "paid"}}, nil
}

func (f *fakeOrders) CancelOrder(_ context.Context, in *orderv1.CancelOrderRequest, _ ...grpc.CallOption) (*orderv1.CancelOrderResponse, error) {
	f.cancelled = in
	return &orderv1.CancelOrderResponse{Order: &orderv1.Order{Number: in.GetNumber(), Status: "cancelled"}, PreviousStatus: "paid"}, nil
}

func testEnv(st *memory.Store, orders *fakeOrders) *env {
	cfg := config.Config{StoreBackend: config.BackendMemory, DBTimeout: time.Second, ProviderTimeout: time.Second}
	return &env{
		cfg:         cfg,
		log:         logger.Discard(),
		openBackend: func() (*bootstrap.Backend, error) { return bootstrap.MemoryBackend(st), nil },
		dialOrders: func(string) (orderv1.OrderServiceClient, io.Closer, error) {
			return orders, io.NopCloser(nil), nil
		},
	}
}

func run(t *testing.T, e *env, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(e)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedCatalogIsRepeatable(t *testing.T) {
	ctx := context.Background()
	catalog := catalogapp.NewService(memory.New().Products())

	res, err := seedCatalog(ctx, catalog, strings.NewReader(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, seedResult{Created: 2}, res)

	res, err = seedCatalog(ctx, catalog, strings.NewReader(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, seedResult{Unchanged: 2}, res)

	res, err = seedCatalog(ctx, catalog, strings.NewReader(strings.Replace(catalogYAML, "status: draft", "status: active", 1)))
	require.NoError(t, err)
	assert.Equal(t, seedResult{Updated: 1, Unchanged: 1}, res)

	mug, err := catalog.GetProductBySKU(ctx, "MUG-01")
	require.NoError(t, err)
	assert.Equal(t, catalogdomain.ProductActive, mug.Status)
}

func TestSeedCatalogRejectsUnknownFields(t *testing.T) {
	catalog := catalogapp.NewService(memory.New().Products())
	_, err := seedCatalog(context.Background(), catalog, strings.NewReader("products:\n  - sku: X\n    price: 10\n"))
	assert.Error(t, err)
}

func TestSeedCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))
	st := memory.New()

	out, err := run(t, testEnv(st, nil), "seed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "created 2")
	assert.Equal(t, 2, st.Counts()["products"])
}

func TestConflictsListAndResolve(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	e := testEnv(st, nil)

	svc, closeFn, err := e.services()
	require.NoError(t, err)
	defer closeFn()

	p, err := svc.Catalog.CreateProduct(ctx, catalogapp.CreateProductInput{SKU: "S-1", Name: "Sock", Currency: "MXN", Amount: 100, Status: catalogdomain.ProductActive})
	require.NoError(t, err)
	o, err := svc.Orders.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		CustomerEmail: "c@example.com", Provider: "stripe",
		Items: []orderdomain.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.Engine.Apply(ctx, paymentdomain.PaymentEvent{
		Provider: paymentdomain.ProviderStripe, ProviderEventID: "evt_refund", CorrelationID: o.Reference,
		TargetStatus: orderdomain.StatusRefunded,
	})
	require.NoError(t, err)

	out, err := run(t, e, "conflicts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "evt_refund")
	assert.Contains(t, out, "refunded")

	out, err = run(t, e, "conflicts", "resolve", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "resolved conflict 1")

	out, err = run(t, e, "conflicts", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "evt_refund")

	_, err = run(t, e, "conflicts", "resolve", "abc")
	assert.Error(t, err)
}

func TestOrderCommands(t *testing.T) {
	orders := &fakeOrders{}
	e := testEnv(memory.New(), orders)

	out, err := run(t, e, "order", "show", "SF-AAAA0001")
	require.NoError(t, err)
	assert.Contains(t, out, `"number": "SF-AAAA0001"`)

	_, err = run(t, e, "order", "cancel", "SF-AAAA0001")
	assert.Error(t, err, "reason is required")

	out, err = run(t, e, "order", "cancel", "SF-AAAA0001", "--reason", "fraud")
	require.NoError(t, err)
	assert.Equal(t, "fraud", orders.cancelled.GetReason())
	assert.Contains(t, out, `"previous_status": "paid"`)
}

func TestMigrateNeedsPostgres(t *testing.T) {
	_, err := run(t, testEnv(memory.New(), nil), "migrate")
	assert.ErrorContains(t, err, "STORE_BACKEND=postgres")
}
