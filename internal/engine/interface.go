// Package engine implements cost aggregation and display derivation for
// Forge compositions: powers, techniques, and armaments built from catalog
// parts.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/runeforge/codex-api/internal/engine Engine

import (
	"context"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

// Engine turns a composition and a catalog snapshot into resource costs and
// a render-ready display bundle. Every call is a single-pass pure
// computation over its inputs; nothing is persisted between calls and no
// input is mutated, so concurrent derivations need no coordination.
type Engine interface {
	// Display derivation, one per composition kind
	DerivePowerDisplay(ctx context.Context, input *DerivePowerDisplayInput) (*DerivePowerDisplayOutput, error)
	DeriveTechniqueDisplay(
		ctx context.Context,
		input *DeriveTechniqueDisplayInput,
	) (*DeriveTechniqueDisplayOutput, error)
	DeriveArmamentDisplay(ctx context.Context, input *DeriveArmamentDisplayInput) (*DeriveArmamentDisplayOutput, error)

	// Armament cost aggregation and rarity banding
	CalculateArmamentCosts(
		ctx context.Context,
		input *CalculateArmamentCostsInput,
	) (*CalculateArmamentCostsOutput, error)
	CalculateCurrencyCostAndRarity(
		ctx context.Context,
		input *CalculateCurrencyCostAndRarityInput,
	) (*CalculateCurrencyCostAndRarityOutput, error)

	// Utility formatting methods
	FormatPowerDamage(power *forge.Power) string
	FormatTechniqueDamage(technique *forge.Technique) string
	FormatArmamentDamage(armament *forge.Armament) string
	FormatRange(rangeValue string) string
	FormatEnergyCost(entry *forge.PartCatalogEntry) string
}
