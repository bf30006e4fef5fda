package forge

// Power is a player-authored power composition.
type Power struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parts       []PartInstance `json:"parts,omitempty"`
	Damage      *Damage        `json:"damage,omitempty"`

	// Explicit display overrides; empty fields fall back to part-contributed
	// values at derivation time.
	ActionType string `json:"action_type,omitempty"`
	IsReaction bool   `json:"is_reaction,omitempty"`
	Range      string `json:"range,omitempty"`
	Area       string `json:"area,omitempty"`
	Duration   string `json:"duration,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// Technique is a player-authored technique composition. It has the same
// shape as a power plus a weapon reference.
type Technique struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parts       []PartInstance `json:"parts,omitempty"`
	Damage      *Damage        `json:"damage,omitempty"`
	Weapon      *WeaponRef     `json:"weapon,omitempty"`

	ActionType string `json:"action_type,omitempty"`
	IsReaction bool   `json:"is_reaction,omitempty"`
	Range      string `json:"range,omitempty"`
	Area       string `json:"area,omitempty"`
	Duration   string `json:"duration,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// Armament is a player-authored item composition built from property parts.
type Armament struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        ArmamentType   `json:"type"`
	Properties  []PartInstance `json:"properties,omitempty"`
	Damage      *Damage        `json:"damage,omitempty"`
	ArmorValue  int32          `json:"armor_value,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}
