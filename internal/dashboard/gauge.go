package dashboard

import (
	"fmt"
	"strings"
)

// renderGauge draws a fixed-width usage bar, e.g. [██████----] 61.3%.
// ratio is clamped to [0, 1].
func renderGauge(ratio float64, width int) string {
	if width < 4 {
		width = 4
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	inner := width - 2
	filled := int(ratio*float64(inner) + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("-", inner-filled) + "]"
}

// cpuGaugeLine renders the CPU usage gauge. usage is a percentage.
func cpuGaugeLine(usage float64, width int) string {
	return fmt.Sprintf("CPU %s %.1f%%", renderGauge(usage/100, width), usage)
}

// memoryGaugeLine renders the memory gauge against the configured limit.
// The backend reports both values in MiB.
func memoryGaugeLine(usage, limit float64, width int) string {
	ratio := 0.0
	if limit > 0 {
		ratio = usage / limit
	}
	return fmt.Sprintf("RAM %s %.1f / %.1f MiB", renderGauge(ratio, width), usage, limit)
}
