package engine

import (
	"fmt"
	"strings"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

// formatDamage normalizes heterogeneous damage notation into one canonical
// string. Free text is returned verbatim; die specs render as "NdS type"
// joined with ", ". A nil or empty input renders as "" and callers
// substitute the display placeholder.
func formatDamage(damage *forge.Damage) string {
	if damage == nil {
		return ""
	}
	if damage.Text != "" {
		return damage.Text
	}

	parts := make([]string, 0, len(damage.Dice))
	for _, die := range damage.Dice {
		if s := formatDieSpec(die); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func formatDieSpec(die forge.DieSpec) string {
	var s string
	switch {
	case die.Amount != 0 && die.Size != 0:
		s = fmt.Sprintf("%dd%d", die.Amount, die.Size)
	case die.Amount != 0:
		s = fmt.Sprintf("%d", die.Amount)
	default:
		return ""
	}

	if die.Type != "" && die.Type != forge.DamageTypeNone {
		s += " " + die.Type
	}
	return s
}
