package engine

import (
	"context"

	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/errors"
)

type engine struct{}

// Config holds the dependencies for the derivation engine. The engine is
// pure and currently needs none; the config exists so callers construct it
// the same way as every other component.
type Config struct{}

// Validate ensures the config is usable
func (cfg *Config) Validate() error {
	return nil
}

// New creates the derivation engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) DerivePowerDisplay(
	ctx context.Context,
	input *DerivePowerDisplayInput,
) (*DerivePowerDisplayOutput, error) {
	if input == nil || input.Power == nil {
		return nil, errors.InvalidArgument("power is required")
	}

	power := input.Power
	bundle := deriveBundle(derivationSpec{
		name:        power.Name,
		description: power.Description,
		parts:       power.Parts,
		damage:      power.Damage,
		actionType:  power.ActionType,
		isReaction:  power.IsReaction,
		duration:    power.Duration,
		rangeValue:  power.Range,
		area:        power.Area,
	}, newCatalogIndex(input.Catalog))

	return &DerivePowerDisplayOutput{Bundle: bundle}, nil
}

func (e *engine) DeriveTechniqueDisplay(
	ctx context.Context,
	input *DeriveTechniqueDisplayInput,
) (*DeriveTechniqueDisplayOutput, error) {
	if input == nil || input.Technique == nil {
		return nil, errors.InvalidArgument("technique is required")
	}

	technique := input.Technique
	spec := derivationSpec{
		name:        technique.Name,
		description: technique.Description,
		parts:       technique.Parts,
		damage:      technique.Damage,
		actionType:  technique.ActionType,
		isReaction:  technique.IsReaction,
		duration:    technique.Duration,
		rangeValue:  technique.Range,
		area:        technique.Area,
	}
	if technique.Weapon != nil {
		spec.weaponDamage = technique.Weapon.Damage
	}
	bundle := deriveBundle(spec, newCatalogIndex(input.Catalog))

	return &DeriveTechniqueDisplayOutput{Bundle: bundle}, nil
}

func (e *engine) DeriveArmamentDisplay(
	ctx context.Context,
	input *DeriveArmamentDisplayInput,
) (*DeriveArmamentDisplayOutput, error) {
	if input == nil || input.Armament == nil {
		return nil, errors.InvalidArgument("armament is required")
	}

	armament := input.Armament
	bundle := deriveBundle(derivationSpec{
		name:        armament.Name,
		description: armament.Description,
		parts:       armament.Properties,
		damage:      armament.Damage,
		bandRarity:  true,
		tiers:       input.TierTable,
	}, newCatalogIndex(input.Catalog))

	return &DeriveArmamentDisplayOutput{Bundle: bundle}, nil
}

func (e *engine) CalculateArmamentCosts(
	ctx context.Context,
	input *CalculateArmamentCostsInput,
) (*CalculateArmamentCostsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	totals := aggregateParts(input.Properties, newCatalogIndex(input.Catalog))
	return &CalculateArmamentCostsOutput{
		TotalCurrency:       totals.currency,
		TotalTrainingPoints: totals.trainingPoints,
		TotalItemPoints:     totals.itemPoints,
		Breakdown:           totals.breakdown,
	}, nil
}

func (e *engine) CalculateCurrencyCostAndRarity(
	ctx context.Context,
	input *CalculateCurrencyCostAndRarityInput,
) (*CalculateCurrencyCostAndRarityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	currencyCost, tier := bandRarity(input.TotalCurrency, input.TotalItemPoints, input.TierTable)
	return &CalculateCurrencyCostAndRarityOutput{
		CurrencyCost: currencyCost,
		RarityTier:   tier,
	}, nil
}

func (e *engine) FormatPowerDamage(power *forge.Power) string {
	if power == nil {
		return ""
	}
	return formatDamage(power.Damage)
}

// FormatTechniqueDamage formats a technique's damage, falling back to the
// weapon's own damage when the technique carries none.
func (e *engine) FormatTechniqueDamage(technique *forge.Technique) string {
	if technique == nil {
		return ""
	}
	if text := formatDamage(technique.Damage); text != "" {
		return text
	}
	if technique.Weapon != nil {
		return formatDamage(technique.Weapon.Damage)
	}
	return ""
}

func (e *engine) FormatArmamentDamage(armament *forge.Armament) string {
	if armament == nil {
		return ""
	}
	return formatDamage(armament.Damage)
}

// FormatRange renders a range value, substituting the placeholder for an
// empty one.
func (e *engine) FormatRange(rangeValue string) string {
	if rangeValue == "" {
		return forge.DisplayPlaceholder
	}
	return rangeValue
}

// FormatEnergyCost renders a catalog entry's standalone energy cost for
// browsing: percentage parts read as a signed percentage change, additive
// parts as a plain number.
func (e *engine) FormatEnergyCost(entry *forge.PartCatalogEntry) string {
	if entry == nil {
		return ""
	}
	if entry.IsPercentageCost {
		return formatPercent(entry.BaseEnergyCost)
	}
	return formatNumber(entry.BaseEnergyCost)
}
