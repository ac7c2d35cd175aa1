package engine

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Reason identifies which rule kind produced a discount.
type Reason string

const (
	ReasonBuyXGetYFree       Reason = "BUY_X_GET_Y_FREE"
	ReasonCategoryPercentage Reason = "CATEGORY_PERCENTAGE_DISCOUNT"
	ReasonHighestThreshold   Reason = "HIGHEST_THRESHOLD_DISCOUNT"
)

// Discount is one applied rule. Amount stays unrounded internally; rounding
// to two fraction digits happens only when the record is serialized.
// ProductID is set for the item-scoped reasons, Threshold for the threshold
// reason.
type Discount struct {
	Reason    Reason
	Amount    decimal.Decimal
	ProductID int64
	Threshold decimal.Decimal
}

// Result is the full outcome of one calculation. Discounts appear in
// computation order: buy-X-get-Y first, then min-items, then the threshold
// discount if any. TotalDiscount and DiscountedTotal are kept unrounded so
// that DiscountedTotal always equals the items total minus TotalDiscount
// exactly; both round at serialization time.
type Result struct {
	OrderID         int64
	Discounts       []Discount
	TotalDiscount   decimal.Decimal
	DiscountedTotal decimal.Decimal
}

// MarshalJSON serializes the discount with its amount as a fixed-2-decimal
// string. StringFixed rounds half away from zero, which for these
// non-negative amounts is round-half-up.
func (d Discount) MarshalJSON() ([]byte, error) {
	w := struct {
		Reason    Reason      `json:"discountReason"`
		Amount    string      `json:"discountAmount"`
		ProductID *int64      `json:"productId,omitempty"`
		Threshold json.Number `json:"threshold,omitempty"`
	}{
		Reason: d.Reason,
		Amount: d.Amount.StringFixed(2),
	}
	switch d.Reason {
	case ReasonHighestThreshold:
		w.Threshold = json.Number(d.Threshold.String())
	default:
		id := d.ProductID
		w.ProductID = &id
	}
	return json.Marshal(w)
}

// MarshalJSON serializes totals as fixed-2-decimal strings and guarantees a
// discounts array (never null) so the wire shape is stable for consumers.
func (r Result) MarshalJSON() ([]byte, error) {
	discounts := r.Discounts
	if discounts == nil {
		discounts = []Discount{}
	}
	return json.Marshal(struct {
		OrderID         int64      `json:"orderId"`
		Discounts       []Discount `json:"discounts"`
		TotalDiscount   string     `json:"totalDiscount"`
		DiscountedTotal string     `json:"discountedTotal"`
	}{
		OrderID:         r.OrderID,
		Discounts:       discounts,
		TotalDiscount:   r.TotalDiscount.StringFixed(2),
		DiscountedTotal: r.DiscountedTotal.StringFixed(2),
	})
}
