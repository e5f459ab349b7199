package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

// OrderRepo is the Order Store. CreateOrderTx writes the order, its items and its
// correlation entry in one transaction and returns ErrDuplicateNumber when the
// generated order number is already taken.
type OrderRepo interface {
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, id string) (domain.Order, error)
	GetByNumber(ctx context.Context, number string) (domain.Order, error)
	ListByCustomerEmail(ctx context.Context, email string, limit int) ([]domain.Order, error)
	// CancelTx locks the order and hands its current status to decide. When decide
	// returns apply=true the status becomes cancelled in the same transaction.
	CancelTx(ctx context.Context, id string, decide func(current domain.Status) (apply bool, err error)) (domain.Order, domain.Status, error)
}

// CustomerResolver finds or creates the customer before the order is written.
// The submitted profile is merged only after the order has committed.
type CustomerResolver interface {
	Resolve(ctx context.Context, email string) (Customer, error)
	MergeProfile(ctx context.Context, email string, p CustomerProfile) error
}

type CustomerProfile struct {
	Name       string
	Phone      string
	Address    string
	City       string
	Country    string
	PostalCode string
}

type Customer struct {
	ID    string
	Email string
}

// Pricer prices cart lines from the catalog, ignoring any client-supplied price.
type Pricer interface {
	Price(ctx context.Context, items []domain.OrderItemRequest) (PricedCart, error)
}

type PricedCart struct {
	Currency string
	Subtotal int64
	Lines    []domain.OrderItem
}
