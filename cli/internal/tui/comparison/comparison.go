// ABOUTME: Comparison view showing current vs proposed design metrics
// ABOUTME: Displays per-metric changes, hover throttle, and comparison warnings

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/icons"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/results"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/styles"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/widgets"
)

// higherIsBetter marks metrics whose increase improves the design. Metrics
// not listed (frame geometry) are shown without a judgement.
var higherIsBetter = map[models.MetricKey]bool{
	models.MetricTotalThrust:    true,
	models.MetricThrustToWeight: true,
	models.MetricFlightTime:     true,
	models.MetricPowerPerMotor:  false,
	models.MetricTotalPower:     false,
	models.MetricCurrentDraw:    false,
	models.MetricESCRating:      false,
}

// Comparison displays a design comparison
type Comparison struct {
	result *models.DesignComparison
	style  services.DisplayStyle
	width  int
}

// New creates a new comparison view
func New(result *models.DesignComparison, width int) *Comparison {
	return &Comparison{
		result: result,
		style:  services.DisplayPrecise,
		width:  width,
	}
}

// SetStyle selects precise or whole-number display
func (c *Comparison) SetStyle(style services.DisplayStyle) {
	c.style = style
}

// SetWidth updates the view width
func (c *Comparison) SetWidth(width int) {
	c.width = width
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.result == nil {
		return "No comparison data"
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Compare.String() + " Design Comparison"))
	sb.WriteString("\n")

	if note := c.variantNote(); note != "" {
		sb.WriteString(styles.Subtitle.Render(note))
		sb.WriteString("\n")
	}

	sb.WriteString(c.renderTable())
	sb.WriteString("\n")
	sb.WriteString(c.renderThrottle())

	if w := results.RenderWarnings(c.result.Warnings); w != "" {
		sb.WriteString("\n\n")
		sb.WriteString(w)
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}

// variantNote explains rows missing because only one design has electrical inputs
func (c *Comparison) variantNote() string {
	cur, prop := c.result.Current.Variant, c.result.Proposed.Variant
	if cur == prop {
		return ""
	}
	return fmt.Sprintf("Variant: %s → %s (electrical metrics shown only when both designs have them)", cur, prop)
}

func (c *Comparison) renderTable() string {
	labelWidth := len("Metric")
	for _, d := range c.result.Deltas {
		labelWidth = max(labelWidth, lipgloss.Width(d.Label))
	}
	const valueWidth = 12

	header := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)

	var sb strings.Builder
	sb.WriteString(header.Render(padRight("Metric", labelWidth) + "  " +
		padLeft("Current", valueWidth) + "  " +
		padLeft("Proposed", valueWidth) + "  Change"))
	sb.WriteString("\n")

	for _, d := range c.result.Deltas {
		cur := c.formatValue(d.Key, d.Current)
		prop := c.formatValue(d.Key, d.Proposed)
		sb.WriteString(padRight(d.Label, labelWidth) + "  " +
			padLeft(cur, valueWidth) + "  " +
			padLeft(prop, valueWidth) + "  " +
			c.renderChange(d))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatValue renders one side of a delta the way the metric table does
func (c *Comparison) formatValue(key models.MetricKey, value float64) string {
	for _, m := range c.result.Current.Metrics {
		if m.Key == key {
			m.Value = value
			return services.FormatValue(m, c.style)
		}
	}
	return services.FormatValue(models.Metric{Key: key, Value: value}, c.style)
}

func (c *Comparison) renderChange(d models.MetricDelta) string {
	text := services.FormatChange(d, c.style)
	better, judged := higherIsBetter[d.Key]
	if !judged {
		return lipgloss.NewStyle().Foreground(styles.Muted).Render(text)
	}
	return widgets.DeltaBadge(text, d.Change, better)
}

// renderThrottle shows hover throttle for both designs on the same scale
func (c *Comparison) renderThrottle() string {
	config := widgets.DefaultProgressBarConfig()

	line := func(label string, m models.DesignMetrics) string {
		twr, _ := m.Value(models.MetricThrustToWeight)
		throttle := results.HoverThrottle(twr)
		return fmt.Sprintf("  %-9s %s %3.0f%%", label, widgets.ProgressBar(throttle, config), min(throttle, 999))
	}

	return styles.Subtitle.Render("Hover throttle") + "\n" +
		line("Current", c.result.Current) + "\n" +
		line("Proposed", c.result.Proposed)
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-lipgloss.Width(s))) + s
}
