package forge

// DieSpec is a single damage die expression, e.g. 2d6 fire.
// Amount without a size renders as a flat value.
type DieSpec struct {
	Amount int32  `json:"amount,omitempty"`
	Size   int32  `json:"size,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Damage is a heterogeneous damage notation: either free text authored
// verbatim, or an ordered list of die specs. Text wins when both are set.
type Damage struct {
	Text string    `json:"text,omitempty"`
	Dice []DieSpec `json:"dice,omitempty"`
}

// WeaponRef is a technique's weapon reference. A technique without explicit
// damage inherits the weapon's damage.
type WeaponRef struct {
	Name   string  `json:"name"`
	Damage *Damage `json:"damage,omitempty"`
}
