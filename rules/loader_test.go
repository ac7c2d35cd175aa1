package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullConfiguration(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"percentage_discounts": [
			{"threshold": 500, "rate": 0.05},
			{"threshold": 1000, "rate": 0.10}
		],
		"buy_x_get_y_free": [
			{"categories": [2], "required_units": 6, "free_units": 1}
		],
		"min_items_to_discount": [
			{"categories": [1, 3], "min_items": 2, "discount_rate": 0.2}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, cfg.Thresholds, 2)
	assert.True(t, cfg.Thresholds[0].Threshold.Equal(decimal.NewFromInt(500)))
	assert.True(t, cfg.Thresholds[1].Rate.Equal(decimal.RequireFromString("0.10")))

	require.Len(t, cfg.BuyXGetYFree, 1)
	assert.Equal(t, []int64{2}, cfg.BuyXGetYFree[0].Categories)
	assert.Equal(t, 6, cfg.BuyXGetYFree[0].RequiredUnits)
	assert.Equal(t, 1, cfg.BuyXGetYFree[0].FreeUnits)

	require.Len(t, cfg.MinItems, 1)
	assert.Equal(t, []int64{1, 3}, cfg.MinItems[0].Categories)
	assert.Equal(t, 2, cfg.MinItems[0].MinItems)
}

func TestParseMissingTopLevelKeysDefaultsEmpty(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, cfg.Empty())

	cfg, err = Parse([]byte(`{"percentage_discounts": null}`))
	require.NoError(t, err)
	assert.True(t, cfg.Empty())
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"threshold missing rate", `{"percentage_discounts": [{"threshold": 500}]}`},
		{"threshold missing threshold", `{"percentage_discounts": [{"rate": 0.05}]}`},
		{"rate above one", `{"percentage_discounts": [{"threshold": 500, "rate": 1.5}]}`},
		{"negative rate", `{"percentage_discounts": [{"threshold": 500, "rate": -0.1}]}`},
		{"bxgy missing categories", `{"buy_x_get_y_free": [{"required_units": 6, "free_units": 1}]}`},
		{"bxgy missing free units", `{"buy_x_get_y_free": [{"categories": [2], "required_units": 6}]}`},
		{"bxgy zero required units", `{"buy_x_get_y_free": [{"categories": [2], "required_units": 0, "free_units": 1}]}`},
		{"min-items missing rate", `{"min_items_to_discount": [{"categories": [1], "min_items": 2}]}`},
		{"min-items zero minimum", `{"min_items_to_discount": [{"categories": [1], "min_items": 0, "discount_rate": 0.2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.blob))
			require.NoError(t, err)
			assert.True(t, cfg.Empty())
		})
	}
}

func TestParseKeepsValidEntriesAlongsideMalformed(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"percentage_discounts": [
			{"threshold": 500},
			{"threshold": 1000, "rate": 0.10}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, cfg.Thresholds, 1)
	assert.True(t, cfg.Thresholds[0].Threshold.Equal(decimal.NewFromInt(1000)))
}

func TestParseInvalidDocument(t *testing.T) {
	for _, blob := range []string{`not json`, `[1,2,3`, `{"percentage_discounts": "nope"}`} {
		_, err := Parse([]byte(blob))
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "blob: %s", blob)
	}
}
