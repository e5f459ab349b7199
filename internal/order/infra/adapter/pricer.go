package adapter

import (
	"context"
	"errors"
	"fmt"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/google/uuid"
)

type CheckoutPricer struct {
	svc *checkoutapp.Service
}

func NewCheckoutPricer(svc *checkoutapp.Service) *CheckoutPricer {
	return &CheckoutPricer{svc: svc}
}

func (p *CheckoutPricer) Price(ctx context.Context, items []domain.OrderItemRequest) (orderapp.PricedCart, error) {
	lines := make([]checkoutdomain.LineRequest, 0, len(items))
	for _, it := range items {
		lines = append(lines, checkoutdomain.LineRequest{
			ProductID: it.ProductID,
			Quantity:  int64(it.Quantity),
			Variant:   checkoutdomain.Variant{Size: it.VariantSize, Color: it.VariantColor},
		})
	}

	quote, err := p.svc.Quote(ctx, lines)
	switch {
	case errors.Is(err, checkoutapp.ErrProductUnavailable):
		return orderapp.PricedCart{}, fmt.Errorf("%w: %v", orderapp.ErrProductUnavailable, err)
	case errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, checkoutapp.ErrInvalidLine),
		errors.Is(err, checkoutapp.ErrMixedCurrency):
		return orderapp.PricedCart{}, fmt.Errorf("%w: %v", orderapp.ErrInvalidInput, err)
	case err != nil:
		return orderapp.PricedCart{}, fmt.Errorf("%w: catalog read: %v", orderapp.ErrPersistence, err)
	}

	out := make([]domain.OrderItem, 0, len(quote.Lines))
	for _, ln := range quote.Lines {
		out = append(out, domain.OrderItem{
			ID:              uuid.NewString(),
			ProductID:       ln.ProductID,
			SKU:             ln.SKU,
			Name:            ln.Name,
			VariantSize:     ln.Variant.Size,
			VariantColor:    ln.Variant.Color,
			UnitAmount:      ln.UnitPrice.Amount,
			Quantity:        int32(ln.Quantity),
			LineTotalAmount: ln.LineTotal.Amount,
		})
	}

	return orderapp.PricedCart{
		Currency: quote.Subtotal.Currency,
		Subtotal: quote.Subtotal.Amount,
		Lines:    out,
	}, nil
}
