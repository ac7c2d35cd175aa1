package rules

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidConfiguration is returned when the configuration blob is not a
// usable JSON document at all. Individual malformed rule entries are not
// errors; they are dropped during parsing.
var ErrInvalidConfiguration = errors.New("rules: invalid configuration")

// rawConfig mirrors the serialized settings-store value. Pointer fields let
// the loader tell "absent" apart from zero when deciding whether an entry is
// complete.
type rawConfig struct {
	PercentageDiscounts []rawThreshold    `json:"percentage_discounts"`
	BuyXGetYFree        []rawBuyXGetYFree `json:"buy_x_get_y_free"`
	MinItemsToDiscount  []rawMinItems     `json:"min_items_to_discount"`
}

type rawThreshold struct {
	Threshold *decimal.Decimal `json:"threshold"`
	Rate      *decimal.Decimal `json:"rate"`
}

type rawBuyXGetYFree struct {
	Categories    []int64 `json:"categories"`
	RequiredUnits *int    `json:"required_units"`
	FreeUnits     *int    `json:"free_units"`
}

type rawMinItems struct {
	Categories   []int64          `json:"categories"`
	MinItems     *int             `json:"min_items"`
	DiscountRate *decimal.Decimal `json:"discount_rate"`
}

// Parse decodes a serialized rule configuration. Missing top-level keys
// default to empty rule lists. Entries missing a required field, with
// non-positive unit counts, or with a rate outside [0,1] are skipped so the
// remaining valid rules keep working. Only a document that cannot be decoded
// at all fails, with an error wrapping ErrInvalidConfiguration.
func Parse(data []byte) (Configuration, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Configuration{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	var cfg Configuration
	for _, t := range raw.PercentageDiscounts {
		if t.Threshold == nil || t.Rate == nil || !validRate(*t.Rate) {
			continue
		}
		cfg.Thresholds = append(cfg.Thresholds, Threshold{
			Threshold: *t.Threshold,
			Rate:      *t.Rate,
		})
	}
	for _, b := range raw.BuyXGetYFree {
		if len(b.Categories) == 0 || b.RequiredUnits == nil || b.FreeUnits == nil {
			continue
		}
		if *b.RequiredUnits <= 0 || *b.FreeUnits <= 0 {
			continue
		}
		cfg.BuyXGetYFree = append(cfg.BuyXGetYFree, BuyXGetYFree{
			Categories:    b.Categories,
			RequiredUnits: *b.RequiredUnits,
			FreeUnits:     *b.FreeUnits,
		})
	}
	for _, m := range raw.MinItemsToDiscount {
		if len(m.Categories) == 0 || m.MinItems == nil || m.DiscountRate == nil {
			continue
		}
		if *m.MinItems <= 0 || !validRate(*m.DiscountRate) {
			continue
		}
		cfg.MinItems = append(cfg.MinItems, MinItems{
			Categories:   m.Categories,
			MinItems:     *m.MinItems,
			DiscountRate: *m.DiscountRate,
		})
	}
	return cfg, nil
}

func validRate(r decimal.Decimal) bool {
	return !r.IsNegative() && r.LessThanOrEqual(decimal.NewFromInt(1))
}
