// ABOUTME: What-if comparison between a current and a proposed drone design
// ABOUTME: Builds per-metric deltas and flags regressions introduced by the change

package services

import (
	"fmt"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// Compare computes both designs and the change in every metric they share
func (c *DesignCalculator) Compare(current, proposed models.DesignInputs) models.DesignComparison {
	cur := c.Compute(current)
	prop := c.Compute(proposed)

	var deltas []models.MetricDelta
	for _, m := range cur.Metrics {
		pv, ok := prop.Value(m.Key)
		if !ok {
			continue
		}
		deltas = append(deltas, models.MetricDelta{
			Key:      m.Key,
			Label:    m.Label,
			Unit:     m.Unit,
			Current:  m.Value,
			Proposed: pv,
			Change:   round2(pv - m.Value),
		})
	}

	warnings := append([]models.DesignWarning(nil), prop.Warnings...)
	warnings = append(warnings, c.comparisonWarnings(cur, prop)...)

	return models.DesignComparison{
		Current:  cur,
		Proposed: prop,
		Deltas:   deltas,
		Warnings: warnings,
	}
}

// comparisonWarnings flags regressions that only show up against the current design
func (c *DesignCalculator) comparisonWarnings(current, proposed models.DesignMetrics) []models.DesignWarning {
	var warnings []models.DesignWarning

	curTWR, _ := current.Value(models.MetricThrustToWeight)
	propTWR, _ := proposed.Value(models.MetricThrustToWeight)
	if curTWR >= MinComfortableTWR && propTWR > 0 && propTWR < MinComfortableTWR {
		warnings = append(warnings, models.DesignWarning{
			Severity: models.SeverityWarning,
			Metric:   models.MetricThrustToWeight,
			Message:  fmt.Sprintf("Thrust-to-weight ratio falls below 2:1 (%.2f → %.2f)", curTWR, propTWR),
		})
	}

	curFlight, okCur := current.Value(models.MetricFlightTime)
	propFlight, okProp := proposed.Value(models.MetricFlightTime)
	if okCur && okProp && propFlight < curFlight {
		warnings = append(warnings, models.DesignWarning{
			Severity: models.SeverityInfo,
			Metric:   models.MetricFlightTime,
			Message:  fmt.Sprintf("Flight time drops by %.2f min", curFlight-propFlight),
		})
	}

	curESC, okCur := current.Value(models.MetricESCRating)
	propESC, okProp := proposed.Value(models.MetricESCRating)
	if okCur && okProp && propESC > curESC {
		warnings = append(warnings, models.DesignWarning{
			Severity: models.SeverityInfo,
			Metric:   models.MetricESCRating,
			Message:  fmt.Sprintf("ESC rating requirement rises from %.0f A to %.0f A", curESC, propESC),
		})
	}

	return warnings
}
