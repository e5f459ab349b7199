package grpc

import (
	"context"
	"errors"

	checkoutv1 "github.com/dwikikusuma/storefront/api/gen/checkout/v1"
	"github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	checkoutv1.UnimplementedCheckoutServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

// Quote prices a cart without creating an order.
func (s *Server) Quote(ctx context.Context, req *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	items := make([]domain.LineRequest, 0, len(req.GetItems()))
	for _, it := range req.GetItems() {
		if it == nil {
			continue
		}
		items = append(items, domain.LineRequest{
			ProductID: it.GetProductId(),
			Quantity:  it.GetQuantity(),
			Variant:   domain.Variant{Size: it.GetVariantSize(), Color: it.GetVariantColor()},
		})
	}

	q, err := s.svc.Quote(ctx, items)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmptyCart), errors.Is(err, app.ErrInvalidLine):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, app.ErrProductUnavailable), errors.Is(err, app.ErrMixedCurrency):
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, "quote failed")
	}

	return toProto(q), nil
}

func toProto(q domain.Quote) *checkoutv1.QuoteResponse {
	lines := make([]*checkoutv1.QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, &checkoutv1.QuoteLine{
			ProductId:    ln.ProductID,
			Sku:          ln.SKU,
			Name:         ln.Name,
			VariantSize:  ln.Variant.Size,
			VariantColor: ln.Variant.Color,
			Quantity:     ln.Quantity,
			UnitPrice:    &checkoutv1.Money{Currency: ln.UnitPrice.Currency, Amount: ln.UnitPrice.Amount},
			LineTotal:    &checkoutv1.Money{Currency: ln.LineTotal.Currency, Amount: ln.LineTotal.Amount},
		})
	}

	return &checkoutv1.QuoteResponse{
		Lines:    lines,
		Subtotal: &checkoutv1.Money{Currency: q.Subtotal.Currency, Amount: q.Subtotal.Amount},
	}
}
