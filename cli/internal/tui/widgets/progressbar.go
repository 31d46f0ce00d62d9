// ABOUTME: Progress bar with visual threshold zones
// ABOUTME: Shows green/amber/red regions for hover-throttle displays

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBarConfig holds configuration for the progress bar
type ProgressBarConfig struct {
	Width         int
	WarnThreshold float64 // Percentage where warning zone starts
	CritThreshold float64 // Percentage where critical zone starts
	OKColor       lipgloss.Color
	WarnColor     lipgloss.Color
	CritColor     lipgloss.Color
	EmptyColor    lipgloss.Color
	ShowZones     bool // Show threshold markers in the bar
}

// DefaultProgressBarConfig returns zones for hover throttle: above 50% the
// design is under 2:1 thrust-to-weight, at 100% it cannot lift off.
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Width:         20,
		WarnThreshold: 50,
		CritThreshold: 100,
		OKColor:       lipgloss.Color("#10B981"), // Green
		WarnColor:     lipgloss.Color("#F59E0B"), // Amber
		CritColor:     lipgloss.Color("#EF4444"), // Red
		EmptyColor:    lipgloss.Color("#374151"), // Dark gray
		ShowZones:     true,
	}
}

func clampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ProgressBar renders a progress bar with threshold zones
func ProgressBar(percent float64, config ProgressBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}
	percent = clampPercent(percent)

	filled := int(percent / 100.0 * float64(config.Width))

	// Zone boundaries as positions in the bar
	warnPos := int(config.WarnThreshold / 100.0 * float64(config.Width))
	critPos := int(config.CritThreshold / 100.0 * float64(config.Width))

	var bar strings.Builder
	bar.WriteString("[")

	for i := 0; i < config.Width; i++ {
		char := "░"
		color := config.EmptyColor

		switch {
		case i < filled && i >= critPos:
			char, color = "█", config.CritColor
		case i < filled && i >= warnPos:
			char, color = "█", config.WarnColor
		case i < filled:
			char, color = "█", config.OKColor
		case config.ShowZones && (i == warnPos || i == critPos):
			char = "│"
		}

		bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(char))
	}

	bar.WriteString("]")
	return bar.String()
}

// CompactProgressBar renders a minimal progress bar for tight spaces
func CompactProgressBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	percent = clampPercent(percent)

	filled := int(percent / 100.0 * float64(width))
	empty := width - filled

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("░", empty))
}
