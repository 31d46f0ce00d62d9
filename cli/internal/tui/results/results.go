// ABOUTME: Results screen for one calculated design
// ABOUTME: Shows the metric table, thrust and flight-time blocks, and warnings

package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/icons"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/styles"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/widgets"
)

const (
	labelColumnWidth = 28
	valueColumnWidth = 12
)

// Results displays the metric table for one design
type Results struct {
	inputs  models.DesignInputs
	metrics models.DesignMetrics
	style   services.DisplayStyle
	table   table.Model
	width   int
	height  int
}

// New creates a results view for a calculated design
func New(inputs models.DesignInputs, metrics models.DesignMetrics, width, height int) *Results {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Metric", Width: labelColumnWidth},
			{Title: "Value", Width: valueColumnWidth},
		}),
		table.WithFocused(true),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	ts.Selected = ts.Selected.
		Foreground(styles.Text).
		Background(styles.Surface).
		Bold(false)
	t.SetStyles(ts)

	r := &Results{
		inputs:  inputs,
		metrics: metrics,
		style:   services.DisplayPrecise,
		table:   t,
	}
	r.refreshRows()
	r.SetSize(width, height)
	return r
}

func (r *Results) refreshRows() {
	rows := make([]table.Row, 0, len(r.metrics.Metrics))
	for _, row := range services.FormatDisplay(r.metrics, r.style) {
		rows = append(rows, table.Row{row.Label, row.Value})
	}
	r.table.SetRows(rows)
}

// SetSize updates the view dimensions
func (r *Results) SetSize(width, height int) {
	r.width = width
	r.height = height
	// One line for the header row plus its border
	r.table.SetHeight(min(len(r.metrics.Metrics), max(3, height-2)) + 1)
}

// ToggleStyle switches between precise and whole-number display
func (r *Results) ToggleStyle() services.DisplayStyle {
	if r.style == services.DisplayPrecise {
		r.style = services.DisplayWhole
	} else {
		r.style = services.DisplayPrecise
	}
	r.refreshRows()
	return r.style
}

// SetStyle selects the display style
func (r *Results) SetStyle(style services.DisplayStyle) {
	if style == r.style {
		return
	}
	r.style = style
	r.refreshRows()
}

// Style returns the active display style
func (r *Results) Style() services.DisplayStyle {
	return r.style
}

// Inputs returns the design this view was calculated from
func (r *Results) Inputs() models.DesignInputs {
	return r.inputs.Clone()
}

// Metrics returns the calculated metrics
func (r *Results) Metrics() models.DesignMetrics {
	return r.metrics
}

// Update forwards navigation keys to the metric table
func (r *Results) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return cmd
}

// View renders the metric table with the summary blocks
func (r *Results) View() string {
	var sb strings.Builder

	title := fmt.Sprintf("%s Design Results", icons.Frame.String())
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(r.summary()))
	sb.WriteString("\n")

	sb.WriteString(r.table.View())
	sb.WriteString("\n\n")
	sb.WriteString(r.renderBlocks())

	if w := RenderWarnings(r.metrics.Warnings); w != "" {
		sb.WriteString("\n\n")
		sb.WriteString(w)
	}

	return lipgloss.NewStyle().Width(r.width).Render(sb.String())
}

// summary describes the inputs in one line
func (r *Results) summary() string {
	in := r.inputs
	parts := []string{
		fmt.Sprintf("%s\" props", trimFloat(in.PropellerDiameterInches)),
		fmt.Sprintf("%d rotors", in.RotorCount),
		fmt.Sprintf("%s g AUW", trimFloat(in.DroneWeightGrams)),
	}
	if in.Electrical != nil {
		parts = append(parts, fmt.Sprintf("%sV %s mAh %s KV",
			trimFloat(in.Electrical.BatteryVoltage),
			trimFloat(in.Electrical.BatteryCapacityMilliampHours),
			trimFloat(in.Electrical.MotorKV)))
	}
	return fmt.Sprintf("%s · %s variant · %s", strings.Join(parts, ", "), r.metrics.Variant, r.style)
}

// renderBlocks renders hover throttle and, for the extended variant, flight time
func (r *Results) renderBlocks() string {
	config := widgets.DefaultMetricBlockConfig()

	twr, _ := r.metrics.Value(models.MetricThrustToWeight)
	blocks := []string{
		widgets.MetricBlockWithBar(icons.Gauge, "Hover Throttle", HoverThrottle(twr),
			fmt.Sprintf("TWR %.2f:1", twr), widgets.DefaultProgressBarConfig(), config),
	}

	if m, ok := r.metric(models.MetricFlightTime); ok {
		esc, _ := r.metric(models.MetricESCRating)
		blocks = append(blocks, widgets.MetricBlock(icons.Clock, "Flight Time",
			services.FormatValue(m, r.style)+" min",
			"ESC "+services.FormatValue(esc, r.style)+" A per motor", config))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (r *Results) metric(key models.MetricKey) (models.Metric, bool) {
	for _, m := range r.metrics.Metrics {
		if m.Key == key {
			return m, true
		}
	}
	return models.Metric{}, false
}

// HoverThrottle estimates the throttle share needed to hover, as a percentage.
// A ratio at or below zero reports full throttle.
func HoverThrottle(twr float64) float64 {
	if twr <= 0 {
		return 100
	}
	return 100 / twr
}

// RenderWarnings renders a warning list with severity icons
func RenderWarnings(warnings []models.DesignWarning) string {
	if len(warnings) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.StatusWarning.Render("Warnings"))
	for _, w := range warnings {
		sb.WriteString("\n  ")
		sb.WriteString(widgets.StatusText(w.Message, widgets.StatusFromSeverity(w.Severity)))
	}
	return sb.String()
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
