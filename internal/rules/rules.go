// Package rules loads the host application's rules configuration. The
// rarity tier table lives here rather than in the engine so campaigns can
// tune banding without a rebuild.
package rules

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/errors"
)

// Config is the rules file shape.
type Config struct {
	RarityTiers []RarityTier `yaml:"rarity_tiers"`
}

// RarityTier is the YAML shape of one tier row.
type RarityTier struct {
	Name        string   `yaml:"name"`
	LevelMin    int32    `yaml:"level_min"`
	LevelMax    *int32   `yaml:"level_max"`
	CurrencyMin float64  `yaml:"currency_min"`
	CurrencyMax *float64 `yaml:"currency_max"`
}

// Load reads a rules file and returns its tier table.
func Load(path string) ([]forge.RarityTier, error) {
	data, err := os.ReadFile(path) // #nosec G304 // Path comes from operator flags
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse rules file %s", path)
	}

	if len(cfg.RarityTiers) == 0 {
		return nil, errors.InvalidArgumentf("rules file %s defines no rarity tiers", path)
	}

	tiers := make([]forge.RarityTier, 0, len(cfg.RarityTiers))
	for _, tier := range cfg.RarityTiers {
		if tier.Name == "" {
			return nil, errors.InvalidArgumentf("rules file %s has a rarity tier without a name", path)
		}
		tiers = append(tiers, forge.RarityTier{
			Name:        tier.Name,
			LevelMin:    tier.LevelMin,
			LevelMax:    tier.LevelMax,
			CurrencyMin: tier.CurrencyMin,
			CurrencyMax: tier.CurrencyMax,
		})
	}
	return tiers, nil
}

// DefaultRarityTiers is the built-in banding table used when no rules file
// is supplied.
func DefaultRarityTiers() []forge.RarityTier {
	return []forge.RarityTier{
		{Name: "Common", CurrencyMin: 0, CurrencyMax: currencyPtr(99)},
		{Name: "Uncommon", CurrencyMin: 100, CurrencyMax: currencyPtr(499)},
		{Name: "Rare", CurrencyMin: 500, CurrencyMax: currencyPtr(1999)},
		{Name: "Epic", CurrencyMin: 2000, CurrencyMax: currencyPtr(9999)},
		{Name: "Legendary", CurrencyMin: 10000},
	}
}

func currencyPtr(v float64) *float64 {
	return &v
}
