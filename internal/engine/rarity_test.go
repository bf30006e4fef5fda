package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

func int32Ptr(v int32) *int32       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func testTiers() []forge.RarityTier {
	return []forge.RarityTier{
		{Name: "Common", LevelMin: 0, LevelMax: int32Ptr(1), CurrencyMin: 0, CurrencyMax: float64Ptr(99)},
		{Name: "Rare", LevelMin: 2, LevelMax: int32Ptr(4), CurrencyMin: 100, CurrencyMax: float64Ptr(499)},
		{Name: "Legendary", LevelMin: 5, CurrencyMin: 500},
	}
}

func TestRoundHalfUp(t *testing.T) {
	testCases := []struct {
		value    float64
		expected float64
	}{
		{value: 0, expected: 0},
		{value: 0.4, expected: 0},
		{value: 0.5, expected: 1},
		{value: 1.5, expected: 2},
		{value: 2.4, expected: 2},
		{value: 149.5, expected: 150},
		{value: -0.5, expected: 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, roundHalfUp(tc.value), "roundHalfUp(%v)", tc.value)
	}
}

func TestBandRarity(t *testing.T) {
	testCases := []struct {
		name         string
		currency     float64
		itemPoints   float64
		expectedCost float64
		expectedTier string
	}{
		{
			name:         "first tier match",
			currency:     50,
			itemPoints:   1,
			expectedCost: 50,
			expectedTier: "Common",
		},
		{
			name:         "currency lower bound is inclusive",
			currency:     100,
			itemPoints:   2,
			expectedCost: 100,
			expectedTier: "Rare",
		},
		{
			name:         "currency upper bound is inclusive",
			currency:     499,
			itemPoints:   4,
			expectedCost: 499,
			expectedTier: "Rare",
		},
		{
			name:         "unbounded last tier",
			currency:     100000,
			itemPoints:   9,
			expectedCost: 100000,
			expectedTier: "Legendary",
		},
		{
			name:         "currency rounds half up before banding",
			currency:     99.5,
			itemPoints:   2,
			expectedCost: 100,
			expectedTier: "Rare",
		},
		{
			name:         "item points round half up",
			currency:     150,
			itemPoints:   1.5,
			expectedCost: 150,
			expectedTier: "Rare",
		},
		{
			name:         "level outside every range falls back to last tier",
			currency:     50,
			itemPoints:   9,
			expectedCost: 50,
			expectedTier: "Legendary",
		},
		{
			name:         "currency outside every range falls back to last tier",
			currency:     600,
			itemPoints:   1,
			expectedCost: 600,
			expectedTier: "Legendary",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cost, tier := bandRarity(tc.currency, tc.itemPoints, testTiers())
			assert.Equal(t, tc.expectedCost, cost)
			assert.Equal(t, tc.expectedTier, tier)
		})
	}

	t.Run("empty table yields no tier", func(t *testing.T) {
		cost, tier := bandRarity(149.5, 3, nil)
		assert.Equal(t, 150.0, cost)
		assert.Empty(t, tier)
	})

	t.Run("unordered table is scanned in LevelMin order", func(t *testing.T) {
		shuffled := []forge.RarityTier{
			testTiers()[2],
			testTiers()[0],
			testTiers()[1],
		}
		cost, tier := bandRarity(50, 0, shuffled)
		assert.Equal(t, 50.0, cost)
		assert.Equal(t, "Common", tier)
	})
}
