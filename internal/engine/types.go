package engine

import (
	"github.com/runeforge/codex-api/internal/entities/forge"
)

// PartChip is one entry of a bundle's per-part cost breakdown, in document
// order. Chips carry the part's training point contribution only; energy is
// not shown per part in the UI contract.
type PartChip struct {
	Label                     string
	Description               string
	TrainingPointContribution float64
}

// DisplayBundle is the derived, render-ready summary of a composition. It is
// never persisted by the engine.
type DisplayBundle struct {
	Name        string
	Description string

	// Energy is the numeric total. EnergyDisplay is the human-facing
	// rendering: a plain number, or a signed percentage when the composition
	// carries only percentage parts.
	Energy         float64
	EnergyDisplay  string
	TrainingPoints float64

	ActionType string
	Duration   string
	Range      string
	Area       string
	DamageText string

	PartChips []PartChip

	// Armaments only; zero values for powers and techniques.
	CurrencyCost float64
	RarityTier   string
}

// DerivePowerDisplayInput contains the power and the catalog snapshot to
// derive against.
type DerivePowerDisplayInput struct {
	Power   *forge.Power
	Catalog []forge.PartCatalogEntry
}

// DerivePowerDisplayOutput contains the derived bundle
type DerivePowerDisplayOutput struct {
	Bundle *DisplayBundle
}

// DeriveTechniqueDisplayInput contains the technique and the catalog snapshot
type DeriveTechniqueDisplayInput struct {
	Technique *forge.Technique
	Catalog   []forge.PartCatalogEntry
}

// DeriveTechniqueDisplayOutput contains the derived bundle
type DeriveTechniqueDisplayOutput struct {
	Bundle *DisplayBundle
}

// DeriveArmamentDisplayInput contains the armament, the property catalog
// snapshot, and the rarity tier table
type DeriveArmamentDisplayInput struct {
	Armament  *forge.Armament
	Catalog   []forge.PartCatalogEntry
	TierTable []forge.RarityTier
}

// DeriveArmamentDisplayOutput contains the derived bundle
type DeriveArmamentDisplayOutput struct {
	Bundle *DisplayBundle
}

// CalculateArmamentCostsInput contains property instances and their catalog
type CalculateArmamentCostsInput struct {
	Properties []forge.PartInstance
	Catalog    []forge.PartCatalogEntry
}

// CalculateArmamentCostsOutput contains aggregated armament totals
type CalculateArmamentCostsOutput struct {
	TotalCurrency       float64
	TotalTrainingPoints float64
	TotalItemPoints     float64
	Breakdown           []PartChip
}

// CalculateCurrencyCostAndRarityInput contains aggregated totals and the
// ordered tier table
type CalculateCurrencyCostAndRarityInput struct {
	TotalCurrency   float64
	TotalItemPoints float64
	TierTable       []forge.RarityTier
}

// CalculateCurrencyCostAndRarityOutput contains the banded result
type CalculateCurrencyCostAndRarityOutput struct {
	CurrencyCost float64
	RarityTier   string
}
