package engine

import (
	"github.com/runeforge/codex-api/internal/entities/forge"
)

// costTotals is the result of aggregating one composition's part list.
type costTotals struct {
	energy         float64
	trainingPoints float64
	currency       float64
	itemPoints     float64

	// percentOnly is set when every cost-bearing part was a percentage
	// part; combinedMultiplier then carries the product of their
	// multipliers for percentage display.
	percentOnly        bool
	combinedMultiplier float64

	resolved  []resolvedPart
	breakdown []PartChip
}

// aggregateParts combines resolved part instances into numeric totals.
//
// Training points, currency, and item points sum additively in any order.
// Energy sums additively for normal parts, but a percentage part multiplies
// the running energy subtotal at its position in document order, so part
// ordering is observable in the energy result and must be preserved exactly
// as authored.
//
// Nothing here can fail: unresolved refs contribute zero but keep their
// chip, out-of-range option levels are clamped, and malformed numerics read
// as zero.
func aggregateParts(instances []forge.PartInstance, idx *catalogIndex) costTotals {
	totals := costTotals{
		combinedMultiplier: 1,
		resolved:           idx.resolveAll(instances),
	}
	hasAdditive := false
	hasPercentage := false

	for _, part := range totals.resolved {
		if part.entry == nil {
			totals.breakdown = append(totals.breakdown, PartChip{Label: part.label})
			continue
		}

		entry := part.entry
		quantity := part.instance.EffectiveQuantity()
		level := clampOptionLevel(entry, part.instance.ChosenOptionLevel)

		ownEnergy := entry.BaseEnergyCost
		ownTrainingPoints := entry.BaseTrainingPointCost
		description := entry.Description
		if opt, ok := entry.OptionAt(level); ok {
			ownEnergy += opt.EnergyCost
			ownTrainingPoints += opt.TrainingPointCost
			if opt.Description != "" {
				description = opt.Description
			}
		}

		chipTrainingPoints := ownTrainingPoints * float64(quantity)
		totals.trainingPoints += chipTrainingPoints
		totals.currency += entry.BaseCurrencyCost * float64(quantity)
		totals.itemPoints += entry.BaseItemPointCost * float64(quantity)

		if entry.IsPercentageCost {
			hasPercentage = true
			// The stored energy value is a multiplier (1.25 = "+25%")
			// applied once per quantity to whatever additive subtotal has
			// accumulated so far. A zero or negative multiplier is a
			// malformed record and reads as a no-op.
			if ownEnergy > 0 {
				for i := int32(0); i < quantity; i++ {
					totals.energy *= ownEnergy
					totals.combinedMultiplier *= ownEnergy
				}
			}
		} else {
			hasAdditive = true
			totals.energy += ownEnergy * float64(quantity)
		}

		totals.breakdown = append(totals.breakdown, PartChip{
			Label:                     part.label,
			Description:               description,
			TrainingPointContribution: chipTrainingPoints,
		})
	}

	totals.percentOnly = hasPercentage && !hasAdditive
	return totals
}

// clampOptionLevel clamps a chosen option level to the nearest valid level
// on the entry: levels pointing at absent slots fall back to the highest
// populated slot below them, or to base only.
func clampOptionLevel(entry *forge.PartCatalogEntry, chosen int32) int32 {
	if chosen < 0 {
		return 0
	}
	if chosen > forge.MaxOptionLevel {
		chosen = forge.MaxOptionLevel
	}
	for level := chosen; level > 0; level-- {
		if _, ok := entry.OptionAt(level); ok {
			return level
		}
	}
	return 0
}
