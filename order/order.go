// Package order holds the order-side input model for discount calculation.
// The structures are read-only from the engine's point of view: the caller
// assembles them, hands them over, and must not mutate them mid-calculation.
package order

import "github.com/shopspring/decimal"

// LineItem is one product entry within an order. Quantity is expected to be
// positive and UnitPrice non-negative; validation is the caller's job.
type LineItem struct {
	ProductID  int64
	CategoryID int64
	Quantity   int
	UnitPrice  decimal.Decimal
}

// Order is the finalized snapshot handed to the discount engine. Total is
// whatever the caller has stored so far and is informational only; discount
// math always starts from ItemsTotal.
type Order struct {
	ID        int64
	Total     decimal.Decimal
	LineItems []LineItem
}

// ItemsTotal returns the unrounded sum of quantity × unit price across all
// line items.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.LineItems {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
