package engine

import (
	"fmt"
	"math"
	"strconv"
)

// formatNumber renders a cost total without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatPercent renders an energy multiplier as a signed percentage change:
// 1.25 renders "+25%", 0.9 renders "-10%". One decimal place is shown only
// when the value is non-integral.
func formatPercent(multiplier float64) string {
	pct := (multiplier - 1) * 100
	// Snap float noise before the integrality check (1.1 - 1 is not exactly
	// 0.1 in binary).
	pct = math.Round(pct*10000) / 10000
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%+d%%", int64(pct))
	}
	return fmt.Sprintf("%+.1f%%", pct)
}

// formatEnergyTotal renders a bundle's energy display: compositions made
// solely of percentage parts read as a percentage change, everything else as
// a plain number.
func formatEnergyTotal(totals costTotals) string {
	if totals.percentOnly {
		return formatPercent(totals.combinedMultiplier)
	}
	return formatNumber(totals.energy)
}
