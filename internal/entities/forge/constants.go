package forge

// PartKind identifies which composition family a catalog part belongs to.
type PartKind string

// Part kinds
const (
	PartKindPower            PartKind = "power"
	PartKindTechnique        PartKind = "technique"
	PartKindArmamentProperty PartKind = "armament-property"
)

// CompositionKind identifies which document family a composition is.
type CompositionKind string

// Composition kinds
const (
	CompositionKindPower     CompositionKind = "power"
	CompositionKindTechnique CompositionKind = "technique"
	CompositionKindArmament  CompositionKind = "armament"
)

// ArmamentType identifies the broad category of an armament.
type ArmamentType string

// Armament types
const (
	ArmamentTypeWeapon    ArmamentType = "weapon"
	ArmamentTypeArmor     ArmamentType = "armor"
	ArmamentTypeEquipment ArmamentType = "equipment"
)

// Defense names a part can target
const (
	DefenseGrit    = "grit"
	DefenseReflex  = "reflex"
	DefenseWard    = "ward"
	DefenseResolve = "resolve"
)

// DisplayPlaceholder is rendered for display fields that resolve to nothing.
const DisplayPlaceholder = "-"

// ActionTypeReaction is the action type displayed for reaction compositions
// that carry no explicit action type of their own.
const ActionTypeReaction = "Reaction"

// DamageTypeNone is the sentinel for a die spec that carries no damage type.
const DamageTypeNone = "none"

// MaxOptionLevel is the highest selectable option slot on a catalog part.
const MaxOptionLevel = 3
