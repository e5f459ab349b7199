package grpc_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net"
	"testing"

	orderv1 "github.com/dwikikusuma/storefront/api/gen/order/v1"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	customerapp "github.com/dwikikusuma/storefront/internal/customer/app"
	"github.com/dwikikusuma/storefront/internal/order/app"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	"github.com/dwikikusuma/storefront/internal/order/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func setup(t *testing.T) (orderv1.OrderServiceClient, *catalogapp.Service) {
	t.Helper()
	st := memory.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := catalogapp.NewService(st.Products())
	checkout := checkoutapp.NewService(checkoutadapter.NewCatalogServiceReader(catalog), 4)
	customers := customerapp.NewService(st.Customers())
	svc := app.NewService(st.Orders(), adapter.NewCustomerServiceResolver(customers),
		adapter.NewCheckoutPricer(checkout), nil, log)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	orderv1.RegisterOrderServiceServer(srv, ordergrpc.NewServer(svc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return orderv1.NewOrderServiceClient(conn), catalog
}

func createProduct(t *testing.T, catalog *catalogapp.Service, sku string, status catalogdomain.ProductStatus) string {
	t.Helper()
	p, err := catalog.CreateProduct(context.Background(), catalogapp.CreateProductInput{
		SKU: sku, Name: "Tee " + sku, Currency: "MXN", Amount: 900, Status: status,
	})
	require.NoError(t, err)
	return p.ID
}

func TestOrderServiceRoundTrip(t *testing.T) {
	client, catalog := setup(t)
	ctx := context.Background()
	productID := createProduct(t, catalog, "TEE-1", catalogdomain.ProductActive)

	created, err := client.CreateOrder(ctx, &orderv1.CreateOrderRequest{
		CustomerEmail:  "ana@example.com",
		CustomerName:   "Ana",
		Provider:       "stripe",
		ShippingAmount: 500,
		TaxAmount:      160,
		Shipping:       &orderv1.Shipping{Name: "Ana", Address: "Av. Reforma 1", City: "CDMX", Country: "MX", PostalCode: "06600"},
		Items:          []*orderv1.CreateOrderItem{{ProductId: productID, UnitAmount: 1, Quantity: 2, VariantSize: "M"}},
	})
	require.NoError(t, err)
	o := created.GetOrder()
	assert.Equal(t, "pending", o.GetStatus())
	assert.Equal(t, int64(1800), o.GetSubtotalAmount())
	assert.Equal(t, int64(2460), o.GetTotalAmount())
	assert.Equal(t, "06600", o.GetShipping().GetPostalCode())
	require.Len(t, o.GetItems(), 1)
	assert.Equal(t, int64(900), o.GetItems()[0].GetUnitAmount())

	got, err := client.GetOrder(ctx, &orderv1.GetOrderRequest{Number: o.GetNumber()})
	require.NoError(t, err)
	assert.Equal(t, o.GetId(), got.GetOrder().GetId())

	list, err := client.ListCustomerOrders(ctx, &orderv1.ListCustomerOrdersRequest{Email: "ANA@example.com"})
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)

	cancelled, err := client.CancelOrder(ctx, &orderv1.CancelOrderRequest{Id: o.GetId(), Reason: "customer request"})
	require.NoError(t, err)
	assert.Equal(t, "pending", cancelled.PreviousStatus)
	assert.Equal(t, "cancelled", cancelled.Order.Status)
}

func TestOrderServiceErrorCodes(t *testing.T) {
	client, catalog := setup(t)
	ctx := context.Background()
	archived := createProduct(t, catalog, "OLD-1", catalogdomain.ProductArchived)
	active := createProduct(t, catalog, "TEE-9", catalogdomain.ProductActive)

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{
			name: "empty cart",
			call: func() error {
				_, err := client.CreateOrder(ctx, &orderv1.CreateOrderRequest{CustomerEmail: "a@b.co", Provider: "stripe"})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "unknown provider",
			call: func() error {
				_, err := client.CreateOrder(ctx, &orderv1.CreateOrderRequest{
					CustomerEmail: "a@b.co", Provider: "paypal",
					Items: []*orderv1.CreateOrderItem{{ProductId: archived, Quantity: 1}},
				})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "shipping overflows total",
			call: func() error {
				_, err := client.CreateOrder(ctx, &orderv1.CreateOrderRequest{
					CustomerEmail: "a@b.co", Provider: "stripe", ShippingAmount: math.MaxInt64 - 100,
					Items: []*orderv1.CreateOrderItem{{ProductId: active, Quantity: 1}},
				})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "unavailable product",
			call: func() error {
				_, err := client.CreateOrder(ctx, &orderv1.CreateOrderRequest{
					CustomerEmail: "a@b.co", Provider: "clip",
					Items: []*orderv1.CreateOrderItem{{ProductId: archived, Quantity: 1}},
				})
				return err
			},
			want: codes.FailedPrecondition,
		},
		{
			name: "missing order",
			call: func() error {
				_, err := client.GetOrder(ctx, &orderv1.GetOrderRequest{Number: "SF-NOPE0000"})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "blank lookup",
			call: func() error {
				_, err := client.CancelOrder(ctx, &orderv1.CancelOrderRequest{})
				return err
			},
			want: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}
