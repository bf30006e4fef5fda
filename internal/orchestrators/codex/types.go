package codex

import (
	"github.com/runeforge/codex-api/internal/engine"
	"github.com/runeforge/codex-api/internal/entities/forge"
)

// GetPowerDisplayInput identifies the power to derive
type GetPowerDisplayInput struct {
	PowerID string
}

// GetPowerDisplayOutput contains the derived bundle
type GetPowerDisplayOutput struct {
	Bundle *engine.DisplayBundle
}

// GetTechniqueDisplayInput identifies the technique to derive
type GetTechniqueDisplayInput struct {
	TechniqueID string
}

// GetTechniqueDisplayOutput contains the derived bundle
type GetTechniqueDisplayOutput struct {
	Bundle *engine.DisplayBundle
}

// GetArmamentDisplayInput identifies the armament to derive
type GetArmamentDisplayInput struct {
	ArmamentID string
}

// GetArmamentDisplayOutput contains the derived bundle
type GetArmamentDisplayOutput struct {
	Bundle *engine.DisplayBundle
}

// ListPowerLibraryInput defines the input for batch power derivation
type ListPowerLibraryInput struct{}

// ListPowerLibraryOutput contains one bundle per stored power
type ListPowerLibraryOutput struct {
	Bundles []*engine.DisplayBundle
}

// ListTechniqueLibraryInput defines the input for batch technique derivation
type ListTechniqueLibraryInput struct{}

// ListTechniqueLibraryOutput contains one bundle per stored technique
type ListTechniqueLibraryOutput struct {
	Bundles []*engine.DisplayBundle
}

// ListArmamentLibraryInput defines the input for batch armament derivation
type ListArmamentLibraryInput struct{}

// ListArmamentLibraryOutput contains one bundle per stored armament
type ListArmamentLibraryOutput struct {
	Bundles []*engine.DisplayBundle
}

// CatalogPart pairs a catalog entry with its browsing display cost
type CatalogPart struct {
	Entry         *forge.PartCatalogEntry
	EnergyDisplay string
}

// ListCatalogPartsInput defines the input for catalog browsing
type ListCatalogPartsInput struct {
	// Kind filters to one part kind; empty means all kinds
	Kind forge.PartKind
	// IncludeMechanicOnly includes parts normally hidden from browsing
	IncludeMechanicOnly bool
}

// ListCatalogPartsOutput contains browsable catalog parts
type ListCatalogPartsOutput struct {
	Parts []CatalogPart
}

// PreviewDamageRollInput identifies the composition whose damage to roll
type PreviewDamageRollInput struct {
	Kind forge.CompositionKind
	ID   string
}

// DieRollResult is the outcome of rolling one die spec
type DieRollResult struct {
	Notation   string
	DamageType string
	Dice       []int32
	Total      int32
}

// PreviewDamageRollOutput contains the rolled damage preview
type PreviewDamageRollOutput struct {
	RollID     string
	DamageText string
	Rolls      []DieRollResult
	Total      int32
}
