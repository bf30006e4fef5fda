package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

func TestFormatDamage(t *testing.T) {
	testCases := []struct {
		name     string
		damage   *forge.Damage
		expected string
	}{
		{
			name:     "nil damage renders empty",
			damage:   nil,
			expected: "",
		},
		{
			name:     "free text renders verbatim",
			damage:   &forge.Damage{Text: "2d6 + your level in fire"},
			expected: "2d6 + your level in fire",
		},
		{
			name: "text wins over dice",
			damage: &forge.Damage{
				Text: "special",
				Dice: []forge.DieSpec{{Amount: 2, Size: 6, Type: "fire"}},
			},
			expected: "special",
		},
		{
			name: "single die spec",
			damage: &forge.Damage{
				Dice: []forge.DieSpec{{Amount: 2, Size: 6, Type: "fire"}},
			},
			expected: "2d6 fire",
		},
		{
			name: "multiple specs join with comma",
			damage: &forge.Damage{
				Dice: []forge.DieSpec{
					{Amount: 2, Size: 6, Type: "fire"},
					{Amount: 1, Size: 4, Type: "cold"},
				},
			},
			expected: "2d6 fire, 1d4 cold",
		},
		{
			name: "flat amount without size",
			damage: &forge.Damage{
				Dice: []forge.DieSpec{{Amount: 5, Type: "force"}},
			},
			expected: "5 force",
		},
		{
			name: "none type is suppressed",
			damage: &forge.Damage{
				Dice: []forge.DieSpec{{Amount: 1, Size: 8, Type: forge.DamageTypeNone}},
			},
			expected: "1d8",
		},
		{
			name: "typeless spec renders dice only",
			damage: &forge.Damage{
				Dice: []forge.DieSpec{{Amount: 3, Size: 10}},
			},
			expected: "3d10",
		},
		{
			name: "empty specs are dropped",
			damage: &forge.Damage{
				Dice: []forge.DieSpec{
					{Amount: 2, Size: 6, Type: "fire"},
					{},
					{Amount: 1, Size: 4},
				},
			},
			expected: "2d6 fire, 1d4",
		},
		{
			name:     "dice-less damage renders empty",
			damage:   &forge.Damage{},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatDamage(tc.damage))
		})
	}
}
