// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/runeforge/codex-api/internal/entities/forge"
)

// PartEntryBuilder provides a fluent interface for building test
// PartCatalogEntry instances
type PartEntryBuilder struct {
	entry *forge.PartCatalogEntry
}

// NewPartEntryBuilder creates a new builder with minimal defaults
func NewPartEntryBuilder(id, name string) *PartEntryBuilder {
	return &PartEntryBuilder{
		entry: &forge.PartCatalogEntry{
			ID:   id,
			Name: name,
			Kind: forge.PartKindPower,
		},
	}
}

// WithKind sets the part kind
func (b *PartEntryBuilder) WithKind(kind forge.PartKind) *PartEntryBuilder {
	b.entry.Kind = kind
	return b
}

// WithDescription sets the part description
func (b *PartEntryBuilder) WithDescription(description string) *PartEntryBuilder {
	b.entry.Description = description
	return b
}

// WithEnergyCost sets the base energy cost
func (b *PartEntryBuilder) WithEnergyCost(cost float64) *PartEntryBuilder {
	b.entry.BaseEnergyCost = cost
	return b
}

// WithTrainingPointCost sets the base training point cost
func (b *PartEntryBuilder) WithTrainingPointCost(cost float64) *PartEntryBuilder {
	b.entry.BaseTrainingPointCost = cost
	return b
}

// WithCurrencyCost sets the base currency cost
func (b *PartEntryBuilder) WithCurrencyCost(cost float64) *PartEntryBuilder {
	b.entry.BaseCurrencyCost = cost
	return b
}

// WithItemPointCost sets the base item point cost
func (b *PartEntryBuilder) WithItemPointCost(cost float64) *PartEntryBuilder {
	b.entry.BaseItemPointCost = cost
	return b
}

// AsPercentage marks the energy cost as a multiplier
func (b *PartEntryBuilder) AsPercentage() *PartEntryBuilder {
	b.entry.IsPercentageCost = true
	return b
}

// AsMechanicOnly excludes the part from normal browsing
func (b *PartEntryBuilder) AsMechanicOnly() *PartEntryBuilder {
	b.entry.IsMechanicOnly = true
	return b
}

// WithDuration sets the duration and marks the part as a duration source
func (b *PartEntryBuilder) WithDuration(duration string) *PartEntryBuilder {
	b.entry.Duration = duration
	b.entry.AffectsDuration = true
	return b
}

// WithActionType sets the contributed action type
func (b *PartEntryBuilder) WithActionType(actionType string) *PartEntryBuilder {
	b.entry.ActionType = actionType
	return b
}

// WithRange sets the contributed range
func (b *PartEntryBuilder) WithRange(rangeValue string) *PartEntryBuilder {
	b.entry.Range = rangeValue
	return b
}

// WithArea sets the contributed area
func (b *PartEntryBuilder) WithArea(area string) *PartEntryBuilder {
	b.entry.Area = area
	return b
}

// WithOption populates the option slot for a 1-based level
func (b *PartEntryBuilder) WithOption(level int32, description string, energy, trainingPoints float64) *PartEntryBuilder {
	if level >= 1 && level <= forge.MaxOptionLevel {
		b.entry.Options[level-1] = forge.PartOption{
			Description:       description,
			EnergyCost:        energy,
			TrainingPointCost: trainingPoints,
		}
	}
	return b
}

// Build returns the built entry
func (b *PartEntryBuilder) Build() *forge.PartCatalogEntry {
	return b.entry
}

// BuildValue returns the built entry by value, for snapshot slices
func (b *PartEntryBuilder) BuildValue() forge.PartCatalogEntry {
	return *b.entry
}
