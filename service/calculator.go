// Package service wires the pure discount engine to its collaborators: it
// fetches the active rule configuration from a settings store, runs the
// engine over a finalized order, and reports the outcome. It is the
// in-process call surface; there is no network protocol here.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecomkit/promo/engine"
	"github.com/ecomkit/promo/order"
	"github.com/ecomkit/promo/rules"
)

// RulesKey is the well-known settings key holding the serialized rule
// configuration.
const RulesKey = "discount_rules"

// ErrRulesUnavailable is the only failure surfaced to callers: the rule
// configuration could not be read or parsed. Rule structure details stay in
// the logs.
var ErrRulesUnavailable = errors.New("service: discount calculation unavailable")

// Calculator fetches rules and runs discount calculations. It holds no
// order state and is safe for concurrent use.
type Calculator struct {
	store SettingsStore
	log   zerolog.Logger
}

func NewCalculator(store SettingsStore, log zerolog.Logger) *Calculator {
	return &Calculator{store: store, log: log}
}

// Calculate loads the current rule snapshot and computes the discount
// breakdown for the order. A missing rules key means no discounts are
// configured and yields an empty breakdown; an unreadable store or an
// unparseable blob yields ErrRulesUnavailable.
func (c *Calculator) Calculate(ctx context.Context, o order.Order) (engine.Result, error) {
	cfg, err := c.loadRules(ctx)
	if err != nil {
		c.log.Error().Err(err).Int64("order_id", o.ID).Msg("discount rules unavailable")
		return engine.Result{}, fmt.Errorf("%w: %v", ErrRulesUnavailable, err)
	}

	res := engine.New(cfg).Calculate(o)
	c.log.Info().
		Int64("order_id", o.ID).
		Int("discounts", len(res.Discounts)).
		Str("total_discount", res.TotalDiscount.StringFixed(2)).
		Str("discounted_total", res.DiscountedTotal.StringFixed(2)).
		Msg("discounts calculated")
	return res, nil
}

func (c *Calculator) loadRules(ctx context.Context) (rules.Configuration, error) {
	blob, err := c.store.Get(ctx, RulesKey)
	if errors.Is(err, ErrKeyNotFound) {
		c.log.Debug().Str("key", RulesKey).Msg("no discount rules configured")
		return rules.Configuration{}, nil
	}
	if err != nil {
		return rules.Configuration{}, fmt.Errorf("read %s: %w", RulesKey, err)
	}
	cfg, err := rules.Parse(blob)
	if err != nil {
		return rules.Configuration{}, err
	}
	return cfg, nil
}
