package engine

import (
	"math"
	"sort"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

// roundHalfUp rounds to the nearest whole unit with ties rounding up, the
// rounding rule observed in the currency display.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// bandRarity maps aggregated currency and item-point totals onto a rounded
// currency price and a rarity tier name.
//
// Tiers are scanned in ascending LevelMin order and the first tier whose
// currency range (inclusive on both ends, nil max unbounded) and level range
// both contain the input wins. Out-of-table inputs land in the last tier
// rather than failing: content is never left without a classification.
func bandRarity(totalCurrency, totalItemPoints float64, tiers []forge.RarityTier) (float64, string) {
	currencyCost := roundHalfUp(totalCurrency)
	if len(tiers) == 0 {
		return currencyCost, ""
	}

	ordered := make([]forge.RarityTier, len(tiers))
	copy(ordered, tiers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LevelMin < ordered[j].LevelMin
	})

	level := int32(roundHalfUp(totalItemPoints))
	for _, tier := range ordered {
		if currencyCost < tier.CurrencyMin {
			continue
		}
		if tier.CurrencyMax != nil && currencyCost > *tier.CurrencyMax {
			continue
		}
		if level < tier.LevelMin {
			continue
		}
		if tier.LevelMax != nil && level > *tier.LevelMax {
			continue
		}
		return currencyCost, tier.Name
	}

	return currencyCost, ordered[len(ordered)-1].Name
}
