// Package forge implements the Forge ruleset entities.
package forge

// PartOption is one of a part's up to three optional cost-bearing variants.
// An option is present only when its description is non-empty; an absent
// option never contributes cost.
type PartOption struct {
	Description       string  `json:"description,omitempty"`
	EnergyCost        float64 `json:"energy_cost,omitempty"`
	TrainingPointCost float64 `json:"training_point_cost,omitempty"`
}

// Present reports whether the option slot is populated.
func (o PartOption) Present() bool {
	return o.Description != ""
}

// PartCatalogEntry is a canonical reference-data record: a building block
// used to compose powers, techniques, or armament properties.
// NOTE: This is a data-only struct. All cost aggregation and display
// derivation is done by the engine, not here.
type PartCatalogEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Kind        PartKind `json:"kind"`

	BaseEnergyCost        float64 `json:"base_energy_cost,omitempty"`
	BaseTrainingPointCost float64 `json:"base_training_point_cost,omitempty"`
	BaseCurrencyCost      float64 `json:"base_currency_cost,omitempty"`
	BaseItemPointCost     float64 `json:"base_item_point_cost,omitempty"`

	// IsPercentageCost marks the energy cost as a multiplier on the running
	// additive energy subtotal rather than an additive amount.
	IsPercentageCost bool `json:"is_percentage_cost,omitempty"`

	// AffectsDuration marks the part as a duration source for display
	// fallback resolution.
	AffectsDuration bool `json:"affects_duration,omitempty"`

	// IsMechanicOnly excludes the part from normal catalog browsing.
	IsMechanicOnly bool `json:"is_mechanic_only,omitempty"`

	TargetedDefenses []string `json:"targeted_defenses,omitempty"`

	// Display fields contributed to compositions that do not override them.
	ActionType string `json:"action_type,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Range      string `json:"range,omitempty"`
	Area       string `json:"area,omitempty"`

	// Option slots 1..3. A slot with an empty description is absent.
	Options [MaxOptionLevel]PartOption `json:"options,omitempty"`
}

// OptionCount returns the number of populated option slots. Slots are
// populated contiguously by the admin editor, but gaps are tolerated here.
func (e *PartCatalogEntry) OptionCount() int {
	count := 0
	for _, opt := range e.Options {
		if opt.Present() {
			count++
		}
	}
	return count
}

// OptionAt returns the option for a 1-based level and whether it is present.
func (e *PartCatalogEntry) OptionAt(level int32) (PartOption, bool) {
	if level < 1 || level > MaxOptionLevel {
		return PartOption{}, false
	}
	opt := e.Options[level-1]
	return opt, opt.Present()
}

// PartInstance is a part reference inside a composition document. PartRef
// holds either a catalog id or a literal part name; compositions authored
// before the catalog assigned ids, or that reference renamed parts, carry
// names.
type PartInstance struct {
	PartRef           string `json:"part_ref"`
	ChosenOptionLevel int32  `json:"chosen_option_level,omitempty"`
	Quantity          int32  `json:"quantity,omitempty"`
}

// EffectiveQuantity returns the instance quantity, defaulting to 1.
func (p PartInstance) EffectiveQuantity() int32 {
	if p.Quantity < 1 {
		return 1
	}
	return p.Quantity
}
