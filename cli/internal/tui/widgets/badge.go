// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Maps warning severities and thrust margins to colored badges and icons

package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func levelColors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := levelColors(level)

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// StatusBadge renders a predefined status badge (OK, WARN, CRIT)
func StatusBadge(level StatusLevel) string {
	switch level {
	case StatusOK:
		return Badge("OK", StatusOK)
	case StatusWarning:
		return Badge("WARN", StatusWarning)
	case StatusCritical:
		return Badge("CRIT", StatusCritical)
	case StatusInfo:
		return Badge("INFO", StatusInfo)
	default:
		return Badge("--", StatusNeutral)
	}
}

// StatusFromSeverity maps a design warning severity to a status level
func StatusFromSeverity(severity string) StatusLevel {
	switch severity {
	case models.SeverityCritical:
		return StatusCritical
	case models.SeverityWarning:
		return StatusWarning
	case models.SeverityInfo:
		return StatusInfo
	default:
		return StatusNeutral
	}
}

// TWRLevel grades a thrust-to-weight ratio: below 1:1 cannot hover, below
// 2:1 is marginal.
func TWRLevel(twr float64) StatusLevel {
	switch {
	case twr < 1:
		return StatusCritical
	case twr < services.MinComfortableTWR:
		return StatusWarning
	default:
		return StatusOK
	}
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := levelColors(level)
	style := lipgloss.NewStyle().Foreground(bg)

	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	case StatusInfo:
		return style.Render(icons.Info.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := levelColors(level)
	textStyle := lipgloss.NewStyle().Foreground(bg)
	return fmt.Sprintf("%s %s", StatusIcon(level), textStyle.Render(text))
}

// DeltaBadge renders a formatted change with color. higherIsBetter decides
// whether a positive change is shown as good or as a warning.
func DeltaBadge(text string, change float64, higherIsBetter bool) string {
	level := StatusNeutral
	switch {
	case change > 0 && higherIsBetter, change < 0 && !higherIsBetter:
		level = StatusOK
	case change != 0:
		level = StatusWarning
	}
	return Badge(text, level)
}
