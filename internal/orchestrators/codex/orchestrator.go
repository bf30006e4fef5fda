// Package codex implements the codex orchestrator: it joins stored
// compositions with the part catalog and runs the derivation engine to
// produce render-ready display bundles.
package codex

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/runeforge/codex-api/internal/engine"
	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/errors"
	"github.com/runeforge/codex-api/internal/pkg/idgen"
	"github.com/runeforge/codex-api/internal/repositories/composition"
	"github.com/runeforge/codex-api/internal/repositories/parts"
)

// Regex for parsing dice notation like "2d6" or "1d8 fire" out of authored
// damage text
var damageNotationRegex = regexp.MustCompile(`(?i)(\d+)d(\d+)(?:\s+([a-z]+))?`)

// Service defines the interface for codex operations
type Service interface {
	// Single-composition display derivation
	GetPowerDisplay(ctx context.Context, input *GetPowerDisplayInput) (*GetPowerDisplayOutput, error)
	GetTechniqueDisplay(ctx context.Context, input *GetTechniqueDisplayInput) (*GetTechniqueDisplayOutput, error)
	GetArmamentDisplay(ctx context.Context, input *GetArmamentDisplayInput) (*GetArmamentDisplayOutput, error)

	// Library views: every stored composition derived against one catalog
	// snapshot
	ListPowerLibrary(ctx context.Context, input *ListPowerLibraryInput) (*ListPowerLibraryOutput, error)
	ListTechniqueLibrary(ctx context.Context, input *ListTechniqueLibraryInput) (*ListTechniqueLibraryOutput, error)
	ListArmamentLibrary(ctx context.Context, input *ListArmamentLibraryInput) (*ListArmamentLibraryOutput, error)

	// Catalog browsing for the part pickers
	ListCatalogParts(ctx context.Context, input *ListCatalogPartsInput) (*ListCatalogPartsOutput, error)

	// Damage preview rolling
	PreviewDamageRoll(ctx context.Context, input *PreviewDamageRollInput) (*PreviewDamageRollOutput, error)
}

// Config holds the dependencies for the codex orchestrator
type Config struct {
	PartRepo        parts.Repository
	CompositionRepo composition.Repository
	Engine          engine.Engine
	IDGenerator     idgen.Generator

	// RarityTiers is the banding table applied to armament derivations
	RarityTiers []forge.RarityTier
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PartRepo == nil {
		vb.RequiredField("PartRepo")
	}
	if c.CompositionRepo == nil {
		vb.RequiredField("CompositionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if len(c.RarityTiers) == 0 {
		vb.RequiredField("RarityTiers")
	}

	return vb.Build()
}

type orchestrator struct {
	partRepo        parts.Repository
	compositionRepo composition.Repository
	engine          engine.Engine
	idGen           idgen.Generator
	rarityTiers     []forge.RarityTier
}

// NewOrchestrator creates a new codex orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		partRepo:        cfg.PartRepo,
		compositionRepo: cfg.CompositionRepo,
		engine:          cfg.Engine,
		idGen:           cfg.IDGenerator,
		rarityTiers:     cfg.RarityTiers,
	}, nil
}

// catalogSnapshot fetches the catalog slice for one part kind
func (o *orchestrator) catalogSnapshot(ctx context.Context, kind forge.PartKind) ([]forge.PartCatalogEntry, error) {
	listOutput, err := o.partRepo.ListSnapshot(ctx, parts.ListSnapshotInput{Kind: kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load part catalog")
	}
	return listOutput.Entries, nil
}

// GetPowerDisplay derives the display bundle for one stored power
func (o *orchestrator) GetPowerDisplay(ctx context.Context, input *GetPowerDisplayInput) (*GetPowerDisplayOutput, error) {
	if input == nil || input.PowerID == "" {
		return nil, errors.InvalidArgument("power ID is required")
	}

	getOutput, err := o.compositionRepo.GetPower(ctx, composition.GetPowerInput{ID: input.PowerID})
	if err != nil {
		return nil, err
	}

	catalog, err := o.catalogSnapshot(ctx, forge.PartKindPower)
	if err != nil {
		return nil, err
	}

	deriveOutput, err := o.engine.DerivePowerDisplay(ctx, &engine.DerivePowerDisplayInput{
		Power:   getOutput.Power,
		Catalog: catalog,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive power %s", input.PowerID)
	}

	slog.Info("Derived power display",
		"power_id", input.PowerID,
		"energy", deriveOutput.Bundle.Energy,
		"training_points", deriveOutput.Bundle.TrainingPoints,
	)

	return &GetPowerDisplayOutput{Bundle: deriveOutput.Bundle}, nil
}

// GetTechniqueDisplay derives the display bundle for one stored technique
func (o *orchestrator) GetTechniqueDisplay(
	ctx context.Context,
	input *GetTechniqueDisplayInput,
) (*GetTechniqueDisplayOutput, error) {
	if input == nil || input.TechniqueID == "" {
		return nil, errors.InvalidArgument("technique ID is required")
	}

	getOutput, err := o.compositionRepo.GetTechnique(ctx, composition.GetTechniqueInput{ID: input.TechniqueID})
	if err != nil {
		return nil, err
	}

	catalog, err := o.catalogSnapshot(ctx, forge.PartKindTechnique)
	if err != nil {
		return nil, err
	}

	deriveOutput, err := o.engine.DeriveTechniqueDisplay(ctx, &engine.DeriveTechniqueDisplayInput{
		Technique: getOutput.Technique,
		Catalog:   catalog,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive technique %s", input.TechniqueID)
	}

	slog.Info("Derived technique display",
		"technique_id", input.TechniqueID,
		"energy", deriveOutput.Bundle.Energy,
		"training_points", deriveOutput.Bundle.TrainingPoints,
	)

	return &GetTechniqueDisplayOutput{Bundle: deriveOutput.Bundle}, nil
}

// GetArmamentDisplay derives the display bundle for one stored armament,
// including its currency cost and rarity band
func (o *orchestrator) GetArmamentDisplay(
	ctx context.Context,
	input *GetArmamentDisplayInput,
) (*GetArmamentDisplayOutput, error) {
	if input == nil || input.ArmamentID == "" {
		return nil, errors.InvalidArgument("armament ID is required")
	}

	getOutput, err := o.compositionRepo.GetArmament(ctx, composition.GetArmamentInput{ID: input.ArmamentID})
	if err != nil {
		return nil, err
	}

	catalog, err := o.catalogSnapshot(ctx, forge.PartKindArmamentProperty)
	if err != nil {
		return nil, err
	}

	deriveOutput, err := o.engine.DeriveArmamentDisplay(ctx, &engine.DeriveArmamentDisplayInput{
		Armament:  getOutput.Armament,
		Catalog:   catalog,
		TierTable: o.rarityTiers,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive armament %s", input.ArmamentID)
	}

	slog.Info("Derived armament display",
		"armament_id", input.ArmamentID,
		"currency_cost", deriveOutput.Bundle.CurrencyCost,
		"rarity_tier", deriveOutput.Bundle.RarityTier,
	)

	return &GetArmamentDisplayOutput{Bundle: deriveOutput.Bundle}, nil
}

// ListPowerLibrary derives every stored power against one catalog snapshot
func (o *orchestrator) ListPowerLibrary(
	ctx context.Context,
	_ *ListPowerLibraryInput,
) (*ListPowerLibraryOutput, error) {
	listOutput, err := o.compositionRepo.ListPowers(ctx, composition.ListPowersInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list powers")
	}

	catalog, err := o.catalogSnapshot(ctx, forge.PartKindPower)
	if err != nil {
		return nil, err
	}

	bundles := make([]*engine.DisplayBundle, 0, len(listOutput.Powers))
	for _, power := range listOutput.Powers {
		deriveOutput, err := o.engine.DerivePowerDisplay(ctx, &engine.DerivePowerDisplayInput{
			Power:   power,
			Catalog: catalog,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive power %s", power.ID)
		}
		bundles = append(bundles, deriveOutput.Bundle)
	}

	slog.Info("Derived power library", "count", len(bundles))

	return &ListPowerLibraryOutput{Bundles: bundles}, nil
}

// ListTechniqueLibrary derives every stored technique against one catalog
// snapshot
func (o *orchestrator) ListTechniqueLibrary(
	ctx context.Context,
	_ *ListTechniqueLibraryInput,
) (*ListTechniqueLibraryOutput, error) {
	listOutput, err := o.compositionRepo.ListTechniques(ctx, composition.ListTechniquesInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list techniques")
	}

	catalog, err := o.catalogSnapshot(ctx, forge.PartKindTechnique)
	if err != nil {
		return nil, err
	}

	bundles := make([]*engine.DisplayBundle, 0, len(listOutput.Techniques))
	for _, technique := range listOutput.Techniques {
		deriveOutput, err := o.engine.DeriveTechniqueDisplay(ctx, &engine.DeriveTechniqueDisplayInput{
			Technique: technique,
			Catalog:   catalog,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive technique %s", technique.ID)
		}
		bundles = append(bundles, deriveOutput.Bundle)
	}

	slog.Info("Derived technique library", "count", len(bundles))

	return &ListTechniqueLibraryOutput{Bundles: bundles}, nil
}

// ListArmamentLibrary derives every stored armament against one catalog
// snapshot
func (o *orchestrator) ListArmamentLibrary(
	ctx context.Context,
	_ *ListArmamentLibraryInput,
) (*ListArmamentLibraryOutput, error) {
	listOutput, err := o.compositionRepo.ListArmaments(ctx, composition.ListArmamentsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list armaments")
	}

	catalog, err := o.catalogSnapshot(ctx, forge.PartKindArmamentProperty)
	if err != nil {
		return nil, err
	}

	bundles := make([]*engine.DisplayBundle, 0, len(listOutput.Armaments))
	for _, armament := range listOutput.Armaments {
		deriveOutput, err := o.engine.DeriveArmamentDisplay(ctx, &engine.DeriveArmamentDisplayInput{
			Armament:  armament,
			Catalog:   catalog,
			TierTable: o.rarityTiers,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive armament %s", armament.ID)
		}
		bundles = append(bundles, deriveOutput.Bundle)
	}

	slog.Info("Derived armament library", "count", len(bundles))

	return &ListArmamentLibraryOutput{Bundles: bundles}, nil
}

// ListCatalogParts returns browsable catalog entries with their display
// energy cost. Mechanic-only parts are hidden unless explicitly requested.
func (o *orchestrator) ListCatalogParts(
	ctx context.Context,
	input *ListCatalogPartsInput,
) (*ListCatalogPartsOutput, error) {
	if input == nil {
		input = &ListCatalogPartsInput{}
	}

	entries, err := o.catalogSnapshot(ctx, input.Kind)
	if err != nil {
		return nil, err
	}

	catalogParts := make([]CatalogPart, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		if entry.IsMechanicOnly && !input.IncludeMechanicOnly {
			continue
		}
		catalogParts = append(catalogParts, CatalogPart{
			Entry:         entry,
			EnergyDisplay: o.engine.FormatEnergyCost(entry),
		})
	}

	return &ListCatalogPartsOutput{Parts: catalogParts}, nil
}

// PreviewDamageRoll rolls the damage of one stored composition and returns
// the individual die results
func (o *orchestrator) PreviewDamageRoll(
	ctx context.Context,
	input *PreviewDamageRollInput,
) (*PreviewDamageRollOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("composition ID is required")
	}

	damage, damageText, err := o.lookupDamage(ctx, input.Kind, input.ID)
	if err != nil {
		return nil, err
	}

	specs := rollableSpecs(damage)
	if len(specs) == 0 {
		return nil, errors.FailedPrecondition(
			fmt.Sprintf("composition %s has no rollable damage", input.ID))
	}

	output := &PreviewDamageRollOutput{
		RollID:     o.idGen.Generate(),
		DamageText: damageText,
	}
	for _, spec := range specs {
		result, err := o.rollDieSpec(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", result.Notation)
		}
		output.Rolls = append(output.Rolls, result)
		output.Total += result.Total
	}

	slog.Info("Rolled damage preview",
		"roll_id", output.RollID,
		"composition_id", input.ID,
		"total", output.Total,
	)

	return output, nil
}

// lookupDamage loads the composition and returns its effective damage. For
// techniques the weapon's damage applies when the technique has none of its
// own.
func (o *orchestrator) lookupDamage(
	ctx context.Context,
	kind forge.CompositionKind,
	id string,
) (*forge.Damage, string, error) {
	switch kind {
	case forge.CompositionKindPower:
		getOutput, err := o.compositionRepo.GetPower(ctx, composition.GetPowerInput{ID: id})
		if err != nil {
			return nil, "", err
		}
		return getOutput.Power.Damage, o.engine.FormatPowerDamage(getOutput.Power), nil
	case forge.CompositionKindTechnique:
		getOutput, err := o.compositionRepo.GetTechnique(ctx, composition.GetTechniqueInput{ID: id})
		if err != nil {
			return nil, "", err
		}
		damage := getOutput.Technique.Damage
		if damage == nil && getOutput.Technique.Weapon != nil {
			damage = getOutput.Technique.Weapon.Damage
		}
		return damage, o.engine.FormatTechniqueDamage(getOutput.Technique), nil
	case forge.CompositionKindArmament:
		getOutput, err := o.compositionRepo.GetArmament(ctx, composition.GetArmamentInput{ID: id})
		if err != nil {
			return nil, "", err
		}
		return getOutput.Armament.Damage, o.engine.FormatArmamentDamage(getOutput.Armament), nil
	default:
		return nil, "", errors.InvalidArgumentf("unknown composition kind: %s", kind)
	}
}

// rollableSpecs extracts die specs from a damage value. Structured dice win;
// free text is scanned for dice notation so hand-authored damage still
// previews.
func rollableSpecs(damage *forge.Damage) []forge.DieSpec {
	if damage == nil {
		return nil
	}
	if len(damage.Dice) > 0 {
		return damage.Dice
	}

	var specs []forge.DieSpec
	for _, match := range damageNotationRegex.FindAllStringSubmatch(damage.Text, -1) {
		amount, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		size, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		specs = append(specs, forge.DieSpec{
			Amount: int32(amount),
			Size:   int32(size),
			Type:   strings.ToLower(match[3]),
		})
	}
	return specs
}

// rollDieSpec rolls one die spec with the toolkit and parses the individual
// dice out of the roll description, which reads like "+2d6[3,4]=7". Flat
// amounts without a die size contribute their value directly.
func (o *orchestrator) rollDieSpec(spec forge.DieSpec) (DieRollResult, error) {
	result := DieRollResult{DamageType: spec.Type}

	if spec.Size <= 0 {
		result.Notation = strconv.Itoa(int(spec.Amount))
		result.Total = spec.Amount
		return result, nil
	}
	result.Notation = fmt.Sprintf("%dd%d", spec.Amount, spec.Size)

	roll, err := dice.NewRoll(int(spec.Amount), int(spec.Size))
	if err != nil {
		return result, errors.Wrap(err, "failed to create dice roll")
	}

	result.Total = int32(roll.GetValue())

	description := roll.GetDescription()
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start >= 0 && end > start {
		for _, ds := range strings.Split(description[start+1:end], ",") {
			if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
				result.Dice = append(result.Dice, int32(d))
			}
		}
	}

	return result, nil
}
