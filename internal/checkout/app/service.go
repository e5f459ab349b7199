package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/pkg/money"
	"golang.org/x/sync/errgroup"
)

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID        string
	SKU       string
	Name      string
	Currency  string
	Amount    int64
	Orderable bool
}

type Service struct {
	Catalog CatalogReader

	maxConcurrent int
}

func NewService(catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidLine        = errors.New("invalid cart line")
	ErrMixedCurrency      = errors.New("cart mixes currencies")
	ErrProductUnavailable = errors.New("product unavailable")
)

// Quote prices every line with the catalog's current price. Lookups run
// concurrently, bounded by maxConcurrent; the first failure cancels the rest.
func (s *Service) Quote(ctx context.Context, items []domain.LineRequest) (domain.Quote, error) {
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("%w: item %d: quantity must be greater than zero: %d", ErrInvalidLine, idx, it.Quantity)
			}
			if it.ProductID == "" {
				return fmt.Errorf("%w: item %d: product id is required", ErrInvalidLine, idx)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}
			if !product.Orderable {
				return fmt.Errorf("%w: %s", ErrProductUnavailable, it.ProductID)
			}

			lineTotal, err := money.Mul(product.Amount, it.Quantity)
			if err != nil {
				return fmt.Errorf("%w: item %d: %d x %d: %v", ErrInvalidLine, idx, product.Amount, it.Quantity, err)
			}
			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				SKU:       product.SKU,
				Name:      product.Name,
				Variant:   it.Variant,
				Quantity:  it.Quantity,
				UnitPrice: domain.Money{
					Currency: product.Currency,
					Amount:   product.Amount,
				},
				LineTotal: domain.Money{
					Currency: product.Currency,
					Amount:   lineTotal,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	currency := lines[0].LineTotal.Currency
	var subtotal int64
	for _, line := range lines {
		if line.LineTotal.Currency != currency {
			return domain.Quote{}, ErrMixedCurrency
		}
		var err error
		if subtotal, err = money.Add(subtotal, line.LineTotal.Amount); err != nil {
			return domain.Quote{}, fmt.Errorf("%w: subtotal: %v", ErrInvalidLine, err)
		}
	}

	return domain.Quote{
		Lines: lines,
		Subtotal: domain.Money{
			Currency: currency,
			Amount:   subtotal,
		},
	}, nil
}
