// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines the palette, panels, and severity styles used across screens

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/backend/models"
)

var (
	// Core palette
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light

	// Extended palette
	Accent  = lipgloss.Color("#38BDF8") // Lighter sky for highlights
	Surface = lipgloss.Color("#374151") // Elevated surface background
	Info    = lipgloss.Color("#3B82F6") // Blue

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	StatusInfo = lipgloss.NewStyle().
			Foreground(Info)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

// Severity returns the style used to render a warning of the given severity
func Severity(severity string) lipgloss.Style {
	switch severity {
	case models.SeverityCritical:
		return StatusCritical
	case models.SeverityWarning:
		return StatusWarning
	default:
		return StatusInfo
	}
}
