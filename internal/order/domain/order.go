package domain

import (
	"time"

	"github.com/dwikikusuma/storefront/pkg/money"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// Terminal statuses have no outgoing transitions and are kept for audit.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

type ShippingInfo struct {
	Name       string
	Address    string
	City       string
	Country    string
	PostalCode string
}

type Order struct {
	ID            string
	Number        string
	Reference     string
	CustomerID    string
	CustomerEmail string
	Provider      string
	Status        Status
	Currency      string

	SubTotalAmount int64
	ShippingAmount int64
	TaxAmount      int64
	TotalAmount    int64

	Shipping   ShippingInfo
	OrderItems []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TotalsConsistent checks total = subtotal + shipping + tax without wrapping.
func (o Order) TotalsConsistent() bool {
	sum, err := money.Sum(o.SubTotalAmount, o.ShippingAmount, o.TaxAmount)
	return err == nil && o.TotalAmount == sum
}

type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       string
	SKU             string
	Name            string
	VariantSize     string
	VariantColor    string
	UnitAmount      int64
	Quantity        int32
	LineTotalAmount int64
}

type CreateOrderRequest struct {
	CustomerEmail  string
	Customer       CustomerProfile
	Provider       string
	ShippingAmount int64
	TaxAmount      int64
	Shipping       ShippingInfo
	Items          []OrderItemRequest
}

type CustomerProfile struct {
	Name  string
	Phone string
}

// OrderItemRequest is a cart line. UnitAmount is whatever the client claims and is
// never used for pricing.
type OrderItemRequest struct {
	ProductID    string
	UnitAmount   int64
	Quantity     int32
	VariantSize  string
	VariantColor string
}

type OrderResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Reference   string    `json:"reference"`
	Status      Status    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
