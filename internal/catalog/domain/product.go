package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductDraft, ProductArchived:
		return true
	}
	return false
}

type Product struct {
	ID          string
	SKU         string
	Name        string
	Price       Money
	Description string
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Orderable reports whether the product may be placed in a new order.
func (p Product) Orderable() bool {
	return p.Status == ProductActive
}
