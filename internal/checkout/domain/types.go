package domain

type Money struct {
	Currency string
	Amount   int64
}

type Variant struct {
	Size  string
	Color string
}

// LineRequest is a cart line as submitted by the client. Any client-side price is
// deliberately absent: pricing always comes from the catalog.
type LineRequest struct {
	ProductID string
	Quantity  int64
	Variant   Variant
}

type QuoteLine struct {
	ProductID string
	SKU       string
	Name      string
	Variant   Variant
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines    []QuoteLine
	Subtotal Money
}
