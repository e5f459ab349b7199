package grpc_test

import (
	"context"
	"testing"

	checkoutv1 "github.com/dwikikusuma/storefront/api/gen/checkout/v1"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/storefront/internal/checkout/grpc"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestQuote(t *testing.T) {
	ctx := context.Background()
	catalog := catalogapp.NewService(memory.New().Products())
	srv := checkoutgrpc.NewServer(app.NewService(adapter.NewCatalogServiceReader(catalog), 2))

	tee, err := catalog.CreateProduct(ctx, catalogapp.CreateProductInput{SKU: "TEE", Name: "Tee", Currency: "MXN", Amount: 900})
	require.NoError(t, err)
	draft, err := catalog.CreateProduct(ctx, catalogapp.CreateProductInput{SKU: "NEW", Name: "Soon", Currency: "MXN", Amount: 100, Status: catalogdomain.ProductDraft})
	require.NoError(t, err)

	q, err := srv.Quote(ctx, &checkoutv1.QuoteRequest{Items: []*checkoutv1.QuoteItem{
		{ProductId: tee.ID, Quantity: 2, VariantSize: "L"},
	}})
	require.NoError(t, err)
	require.Len(t, q.Lines, 1)
	assert.Equal(t, "L", q.Lines[0].VariantSize)
	assert.Equal(t, "MXN", q.GetSubtotal().GetCurrency())
	assert.Equal(t, int64(1800), q.GetSubtotal().GetAmount())

	tests := []struct {
		name  string
		items []*checkoutv1.QuoteItem
		want  codes.Code
	}{
		{name: "empty", items: nil, want: codes.InvalidArgument},
		{name: "zero quantity", items: []*checkoutv1.QuoteItem{{ProductId: tee.ID}}, want: codes.InvalidArgument},
		{name: "draft product", items: []*checkoutv1.QuoteItem{{ProductId: draft.ID, Quantity: 1}}, want: codes.FailedPrecondition},
		{name: "unknown product", items: []*checkoutv1.QuoteItem{{ProductId: "missing", Quantity: 1}}, want: codes.FailedPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Quote(ctx, &checkoutv1.QuoteRequest{Items: tt.items})
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}
