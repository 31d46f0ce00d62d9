// ABOUTME: Display formatting for computed design metrics
// ABOUTME: Renders numeric metrics as thousands-separated text rows

package services

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// DisplayStyle selects how metric values are rendered as text
type DisplayStyle string

const (
	// DisplayPrecise keeps two decimals, or none for whole-number metrics
	DisplayPrecise DisplayStyle = "precise"
	// DisplayWhole rounds every metric to the nearest integer
	DisplayWhole DisplayStyle = "whole"
)

const (
	preciseFormat = "#,###.##"
	wholeFormat   = "#,###."
)

// ParseDisplayStyle converts a query or flag value into a DisplayStyle.
// An empty string selects DisplayPrecise.
func ParseDisplayStyle(s string) (DisplayStyle, error) {
	switch DisplayStyle(s) {
	case "", DisplayPrecise:
		return DisplayPrecise, nil
	case DisplayWhole:
		return DisplayWhole, nil
	default:
		return "", fmt.Errorf("unknown display style %q (expected precise or whole)", s)
	}
}

// FormatValue renders a single metric value in the given style. Whole
// numbers round half to even, so 2.5 renders as 2.
func FormatValue(m models.Metric, style DisplayStyle) string {
	if style == DisplayWhole || m.Whole {
		return humanize.FormatFloat(wholeFormat, math.RoundToEven(m.Value))
	}
	return humanize.FormatFloat(preciseFormat, round2(m.Value))
}

// FormatDisplay renders every metric as a label/value row in table order
func FormatDisplay(metrics models.DesignMetrics, style DisplayStyle) []models.DisplayRow {
	rows := make([]models.DisplayRow, 0, len(metrics.Metrics))
	for _, m := range metrics.Metrics {
		rows = append(rows, models.DisplayRow{
			Key:   m.Key,
			Label: m.Label,
			Value: FormatValue(m, style),
		})
	}
	return rows
}

// FormatChange renders a signed delta, e.g. "+2,000" or "-1.25"
func FormatChange(d models.MetricDelta, style DisplayStyle) string {
	whole := style == DisplayWhole || d.Key == models.MetricTotalThrust || d.Key == models.MetricESCRating
	format := preciseFormat
	value := round2(d.Change)
	if whole {
		format = wholeFormat
		value = math.RoundToEven(d.Change)
	}
	if value > 0 {
		return "+" + humanize.FormatFloat(format, value)
	}
	return humanize.FormatFloat(format, value)
}
