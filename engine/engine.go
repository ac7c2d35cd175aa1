// Package engine computes promotional discounts for an order against an
// immutable rule configuration. Calculate is a pure function: no I/O, no
// shared state, safe to call concurrently against the same Engine.
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/ecomkit/promo/order"
	"github.com/ecomkit/promo/rules"
)

// Engine evaluates one rule configuration snapshot. Construct a new Engine
// when the configuration changes; an existing one never mutates.
type Engine struct {
	cfg rules.Configuration
}

// New returns an engine bound to the given configuration snapshot.
func New(cfg rules.Configuration) *Engine {
	return &Engine{cfg: cfg}
}

// Calculate runs the three discount passes in fixed order and returns the
// breakdown plus totals. The order matters: the threshold pass operates on
// the total remaining after the first two passes.
//
// Inputs are assumed validated (positive quantities, non-negative prices);
// the engine does not re-check them and does not clamp a remaining total
// that the caller let go negative.
func (e *Engine) Calculate(o order.Order) Result {
	total := o.ItemsTotal()

	discounts := e.buyXGetYFree(o)
	discounts = append(discounts, e.minItems(o)...)

	remaining := total
	for _, d := range discounts {
		remaining = remaining.Sub(d.Amount)
	}
	if d, ok := e.threshold(remaining); ok {
		discounts = append(discounts, d)
	}

	totalDiscount := decimal.Zero
	for _, d := range discounts {
		totalDiscount = totalDiscount.Add(d.Amount)
	}
	return Result{
		OrderID:         o.ID,
		Discounts:       discounts,
		TotalDiscount:   totalDiscount,
		DiscountedTotal: total.Sub(totalDiscount),
	}
}

// buyXGetYFree emits one discount per (rule, matching line item): every
// requiredUnits purchased grants freeUnits at that item's unit price.
// Rules do not de-duplicate; two rules listing the same category both apply.
func (e *Engine) buyXGetYFree(o order.Order) []Discount {
	var out []Discount
	for _, r := range e.cfg.BuyXGetYFree {
		for _, cat := range r.Categories {
			for _, it := range o.LineItems {
				if it.CategoryID != cat {
					continue
				}
				free := it.Quantity / r.RequiredUnits * r.FreeUnits
				if free <= 0 {
					continue
				}
				out = append(out, Discount{
					Reason:    ReasonBuyXGetYFree,
					Amount:    it.UnitPrice.Mul(decimal.NewFromInt(int64(free))),
					ProductID: it.ProductID,
				})
			}
		}
	}
	return out
}

// minItems discounts the cheapest line item of a category once the category
// holds at least the rule's minimum number of line items. On a price tie the
// earliest item in order position wins.
func (e *Engine) minItems(o order.Order) []Discount {
	var out []Discount
	for _, r := range e.cfg.MinItems {
		for _, cat := range r.Categories {
			var cheapest *order.LineItem
			count := 0
			for i := range o.LineItems {
				it := &o.LineItems[i]
				if it.CategoryID != cat {
					continue
				}
				count++
				if cheapest == nil || it.UnitPrice.LessThan(cheapest.UnitPrice) {
					cheapest = it
				}
			}
			if count < r.MinItems || cheapest == nil {
				continue
			}
			out = append(out, Discount{
				Reason:    ReasonCategoryPercentage,
				Amount:    cheapest.UnitPrice.Mul(r.DiscountRate),
				ProductID: cheapest.ProductID,
			})
		}
	}
	return out
}

// threshold selects the last configured entry whose threshold the remaining
// total meets, scanning every entry so the selection is position-based, not
// first-match. At most one threshold discount applies.
func (e *Engine) threshold(remaining decimal.Decimal) (Discount, bool) {
	var selected *rules.Threshold
	for i := range e.cfg.Thresholds {
		t := &e.cfg.Thresholds[i]
		if t.Threshold.LessThanOrEqual(remaining) {
			selected = t
		}
	}
	if selected == nil {
		return Discount{}, false
	}
	return Discount{
		Reason:    ReasonHighestThreshold,
		Amount:    remaining.Mul(selected.Rate),
		Threshold: selected.Threshold,
	}, true
}
