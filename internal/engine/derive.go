package engine

import (
	"github.com/runeforge/codex-api/internal/entities/forge"
)

// derivationSpec parameterizes the shared derivation pipeline per
// composition kind: which override fields the document carries, where
// fallback damage comes from, and whether rarity banding applies. One
// pipeline keeps the three kinds' rounding and formatting rules from
// drifting apart.
type derivationSpec struct {
	name        string
	description string
	parts       []forge.PartInstance

	damage       *forge.Damage
	weaponDamage *forge.Damage

	actionType string
	isReaction bool
	duration   string
	rangeValue string
	area       string

	bandRarity bool
	tiers      []forge.RarityTier
}

// deriveBundle runs the full aggregate-and-format pipeline for one
// composition against one catalog snapshot.
func deriveBundle(spec derivationSpec, idx *catalogIndex) *DisplayBundle {
	totals := aggregateParts(spec.parts, idx)

	bundle := &DisplayBundle{
		Name:           spec.name,
		Description:    spec.description,
		Energy:         totals.energy,
		EnergyDisplay:  formatEnergyTotal(totals),
		TrainingPoints: totals.trainingPoints,
		ActionType:     resolveActionType(spec, totals.resolved),
		Duration:       resolveDuration(spec.duration, totals.resolved),
		Range:          resolveDisplayField(spec.rangeValue, totals.resolved, rangeOf),
		Area:           resolveDisplayField(spec.area, totals.resolved, areaOf),
		DamageText:     resolveDamageText(spec.damage, spec.weaponDamage),
		PartChips:      totals.breakdown,
	}

	if spec.bandRarity {
		bundle.CurrencyCost, bundle.RarityTier = bandRarity(totals.currency, totals.itemPoints, spec.tiers)
	}

	return bundle
}

// resolveDisplayField resolves a display field to the composition's explicit
// override when non-empty, else to the first resolved part in document order
// that declares a value, else to the placeholder.
func resolveDisplayField(
	override string,
	resolved []resolvedPart,
	fieldOf func(*forge.PartCatalogEntry) string,
) string {
	if override != "" {
		return override
	}
	for _, part := range resolved {
		if part.entry == nil {
			continue
		}
		if v := fieldOf(part.entry); v != "" {
			return v
		}
	}
	return forge.DisplayPlaceholder
}

func rangeOf(e *forge.PartCatalogEntry) string { return e.Range }
func areaOf(e *forge.PartCatalogEntry) string  { return e.Area }

func resolveActionType(spec derivationSpec, resolved []resolvedPart) string {
	if spec.actionType != "" {
		return spec.actionType
	}
	if spec.isReaction {
		return forge.ActionTypeReaction
	}
	return resolveDisplayField("", resolved, func(e *forge.PartCatalogEntry) string { return e.ActionType })
}

// resolveDuration is the one field where part fallback is gated: only parts
// flagged as duration sources contribute.
func resolveDuration(override string, resolved []resolvedPart) string {
	if override != "" {
		return override
	}
	for _, part := range resolved {
		if part.entry == nil || !part.entry.AffectsDuration {
			continue
		}
		if part.entry.Duration != "" {
			return part.entry.Duration
		}
	}
	return forge.DisplayPlaceholder
}

func resolveDamageText(damage, weaponDamage *forge.Damage) string {
	if text := formatDamage(damage); text != "" {
		return text
	}
	if text := formatDamage(weaponDamage); text != "" {
		return text
	}
	return forge.DisplayPlaceholder
}
