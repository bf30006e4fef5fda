package forge

// RarityTier is one row of the ordered rarity banding table. Nil maxima are
// unbounded. Tiers are matched in ascending LevelMin order; the first tier
// whose currency and level ranges both contain the input wins.
type RarityTier struct {
	Name        string   `json:"name"`
	LevelMin    int32    `json:"level_min,omitempty"`
	LevelMax    *int32   `json:"level_max,omitempty"`
	CurrencyMin float64  `json:"currency_min,omitempty"`
	CurrencyMax *float64 `json:"currency_max,omitempty"`
}
