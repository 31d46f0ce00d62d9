// ABOUTME: Compact metric block widget for results displays
// ABOUTME: Combines icon, value, bar, and status in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/cli/internal/tui/icons"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       26,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#0EA5E9"), // Sky
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// padLine renders one bordered content line, padding by display width so
// styled text and wide glyphs line up.
func padLine(content string, innerWidth int) string {
	pad := max(0, innerWidth-lipgloss.Width(content))
	return "│  " + content + strings.Repeat(" ", pad) + "│"
}

func topBorder(icon icons.Icon, title string, innerWidth int, color lipgloss.Color) string {
	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth)
	return fmt.Sprintf("┌─ %s %s┐",
		lipgloss.NewStyle().Foreground(color).Render(titleStr),
		strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1)))
}

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title string, value string, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = DefaultMetricBlockConfig().Width
	}

	// Inner width excludes border and padding
	innerWidth := config.Width - 4

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder(icon, title, innerWidth, config.TitleColor)),
		borderStyle.Render(padLine(valueStyle.Render(truncate(value, innerWidth)), innerWidth)),
		borderStyle.Render(padLine(subtitleStyle.Render(truncate(subtitle, innerWidth)), innerWidth)),
		borderStyle.Render("└" + strings.Repeat("─", config.Width-2) + "┘"),
	}, "\n")
}

// MetricBlockWithBar renders a metric block with a percentage bar graded
// against the zones in bar.
func MetricBlockWithBar(icon icons.Icon, title string, percent float64, details string, bar ProgressBarConfig, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = DefaultMetricBlockConfig().Width
	}

	innerWidth := config.Width - 4
	barWidth := innerWidth - 6

	level := StatusOK
	switch {
	case percent >= bar.CritThreshold:
		level = StatusCritical
	case percent >= bar.WarnThreshold:
		level = StatusWarning
	}
	statusColor, _ := levelColors(level)

	percentStr := lipgloss.NewStyle().Foreground(statusColor).Bold(true).Render(fmt.Sprintf("%3.0f%%", percent))
	valueLine := padLine(percentStr+" "+StatusIcon(level), innerWidth)
	barLine := padLine(CompactProgressBar(percent, barWidth, statusColor), innerWidth)

	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	detailsLine := padLine(detailStyle.Render(truncate(details, innerWidth)), innerWidth)

	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder(icon, title, innerWidth, config.TitleColor)),
		borderStyle.Render(valueLine),
		borderStyle.Render(barLine),
		borderStyle.Render(detailsLine),
		borderStyle.Render("└" + strings.Repeat("─", config.Width-2) + "┘"),
	}, "\n")
}

// truncate shortens a string to maxLen runes with ellipsis if needed
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:max(0, maxLen)])
	}
	return string(runes[:maxLen-3]) + "..."
}
