package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemsTotal(t *testing.T) {
	o := Order{LineItems: []LineItem{
		{ProductID: 1, CategoryID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("19.99")},
		{ProductID: 2, CategoryID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("0.01")},
	}}
	assert.Equal(t, "59.98", o.ItemsTotal().StringFixed(2))
}

func TestItemsTotalEmptyOrder(t *testing.T) {
	assert.True(t, Order{}.ItemsTotal().IsZero())
}

func TestItemsTotalIgnoresStoredTotal(t *testing.T) {
	o := Order{
		Total: decimal.RequireFromString("999.99"),
		LineItems: []LineItem{
			{ProductID: 1, CategoryID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}
	assert.Equal(t, "10.00", o.ItemsTotal().StringFixed(2))
}
