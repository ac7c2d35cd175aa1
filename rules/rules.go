// Package rules defines the merchant-configured discount rule set and the
// loader that parses it from its serialized form. Each rule kind gets its
// own struct so the engine can stay statically typed; the dynamic JSON shape
// never leaks past Parse.
package rules

import "github.com/shopspring/decimal"

// Threshold grants Rate off the order's remaining total once that total
// reaches Threshold. Entries are evaluated in configuration order; the last
// qualifying entry wins.
type Threshold struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// BuyXGetYFree grants FreeUnits free for every RequiredUnits purchased of a
// line item whose category is listed in Categories.
type BuyXGetYFree struct {
	Categories    []int64
	RequiredUnits int
	FreeUnits     int
}

// MinItems discounts the cheapest line item of a listed category by
// DiscountRate once the category holds at least MinItems line items.
type MinItems struct {
	Categories   []int64
	MinItems     int
	DiscountRate decimal.Decimal
}

// Configuration is an immutable snapshot of the active rule set. A single
// snapshot may be shared across concurrent calculations.
type Configuration struct {
	Thresholds   []Threshold
	BuyXGetYFree []BuyXGetYFree
	MinItems     []MinItems
}

// Empty reports whether the configuration holds no rules at all.
func (c Configuration) Empty() bool {
	return len(c.Thresholds) == 0 && len(c.BuyXGetYFree) == 0 && len(c.MinItems) == 0
}
