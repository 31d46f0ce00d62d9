// ABOUTME: Design calculator for rule-of-thumb multirotor sizing
// ABOUTME: Computes frame geometry, thrust, and optional electrical metrics with warnings

package services

import (
	"fmt"
	"math"
	"slices"

	"github.com/markalston/drone-design-calculator/backend/models"
)

const (
	// MillimetersPerInch converts propeller diameter to millimeters
	MillimetersPerInch = 25.4
	// PropClearanceFactor adds 10% clearance between adjacent propellers
	PropClearanceFactor = 1.1
	// CenterPlateRatio sizes the center plate relative to one arm
	CenterPlateRatio = 0.72
	// PowerPerKVVolt is the watts drawn per (KV × volt) of one motor
	PowerPerKVVolt = 0.001
	// UsableCapacityFactor derates the battery to the share that is safely usable
	UsableCapacityFactor = 0.8
	// ESCSafetyMargin is applied on top of per-motor current draw
	ESCSafetyMargin = 1.3

	// MinComfortableTWR is the thrust-to-weight ratio below which a design is marginal
	MinComfortableTWR = 2.0
)

// Options selects which metric set a calculation produces
type Options struct {
	IncludeElectrical bool
}

// DesignCalculator computes design metrics. It holds no state and is safe for
// concurrent use.
type DesignCalculator struct{}

// NewDesignCalculator creates a new calculator
func NewDesignCalculator() *DesignCalculator {
	return &DesignCalculator{}
}

// Compute derives the metric table for the given inputs. The extended variant is
// selected when the electrical block is present.
func (c *DesignCalculator) Compute(inputs models.DesignInputs) models.DesignMetrics {
	return c.ComputeWith(inputs, Options{IncludeElectrical: inputs.HasElectrical()})
}

// ComputeWith derives the metric table using explicit options. Missing electrical
// inputs are treated as zero when electrical metrics are requested.
func (c *DesignCalculator) ComputeWith(inputs models.DesignInputs, opts Options) models.DesignMetrics {
	rotors := float64(inputs.RotorCount)

	// Frame geometry
	propSize := inputs.PropellerDiameterInches * MillimetersPerInch
	armLength := propSize * PropClearanceFactor / 2
	diagonalFrame := armLength * 2
	centerPlate := armLength * CenterPlateRatio
	totalDiagonal := diagonalFrame + centerPlate

	// Thrust
	totalThrust := inputs.ThrustPerMotorGrams * rotors
	var twr float64
	if inputs.DroneWeightGrams > 0 {
		twr = totalThrust / inputs.DroneWeightGrams
	}

	result := models.DesignMetrics{
		Variant: models.VariantBasic,
		Metrics: []models.Metric{
			metric(models.MetricPropSize, round2(propSize)),
			metric(models.MetricArmLength, round2(armLength)),
			metric(models.MetricDiagonalFrame, round2(diagonalFrame)),
			metric(models.MetricCenterPlate, round2(centerPlate)),
			metric(models.MetricTotalDiagonal, round2(totalDiagonal)),
			metric(models.MetricTotalThrust, math.RoundToEven(totalThrust)),
			metric(models.MetricThrustToWeight, round2(twr)),
		},
	}

	if opts.IncludeElectrical {
		var elec models.ElectricalInputs
		if inputs.Electrical != nil {
			elec = *inputs.Electrical
		}

		powerPerMotor := elec.MotorKV * elec.BatteryVoltage * PowerPerKVVolt
		totalPower := powerPerMotor * rotors

		var currentDraw float64
		if elec.BatteryVoltage > 0 {
			currentDraw = totalPower / elec.BatteryVoltage
		}

		capacityAh := elec.BatteryCapacityMilliampHours / 1000
		var flightTime float64
		if currentDraw > 0 {
			flightTime = capacityAh / currentDraw * 60 * UsableCapacityFactor
		}

		var escRating float64
		if inputs.RotorCount > 0 {
			escRating = math.RoundToEven(currentDraw / rotors * ESCSafetyMargin)
		}

		result.Variant = models.VariantExtended
		result.Metrics = append(result.Metrics,
			metric(models.MetricPowerPerMotor, round2(powerPerMotor)),
			metric(models.MetricTotalPower, round2(totalPower)),
			metric(models.MetricCurrentDraw, round2(currentDraw)),
			metric(models.MetricFlightTime, round2(flightTime)),
			metric(models.MetricESCRating, escRating),
		)
	}

	result.Warnings = c.GenerateWarnings(inputs, result)
	return result
}

// GenerateWarnings flags degenerate and marginal results
func (c *DesignCalculator) GenerateWarnings(inputs models.DesignInputs, result models.DesignMetrics) []models.DesignWarning {
	var warnings []models.DesignWarning

	if inputs.DroneWeightGrams <= 0 {
		warnings = append(warnings, models.DesignWarning{
			Severity: models.SeverityCritical,
			Metric:   models.MetricThrustToWeight,
			Message:  "Drone weight is zero; thrust-to-weight ratio reported as 0",
		})
	}

	if !slices.Contains(models.SupportedRotorCounts, inputs.RotorCount) {
		warnings = append(warnings, models.DesignWarning{
			Severity: models.SeverityCritical,
			Metric:   models.MetricTotalThrust,
			Message:  fmt.Sprintf("Rotor count %d is not a supported layout (4, 6, or 8)", inputs.RotorCount),
		})
	}

	if twr, ok := result.Value(models.MetricThrustToWeight); ok && inputs.DroneWeightGrams > 0 {
		switch {
		case twr > 0 && twr < 1:
			warnings = append(warnings, models.DesignWarning{
				Severity: models.SeverityCritical,
				Metric:   models.MetricThrustToWeight,
				Message:  fmt.Sprintf("Thrust-to-weight ratio %.2f:1 cannot lift the airframe", twr),
			})
		case twr >= 1 && twr < MinComfortableTWR:
			warnings = append(warnings, models.DesignWarning{
				Severity: models.SeverityWarning,
				Metric:   models.MetricThrustToWeight,
				Message:  fmt.Sprintf("Thrust-to-weight ratio %.2f:1 is below the recommended 2:1", twr),
			})
		}
	}

	if result.Variant == models.VariantExtended && (inputs.Electrical == nil || inputs.Electrical.BatteryVoltage <= 0) {
		warnings = append(warnings, models.DesignWarning{
			Severity: models.SeverityWarning,
			Metric:   models.MetricCurrentDraw,
			Message:  "Battery voltage is zero; current draw and flight time reported as 0",
		})
	}

	return warnings
}

type metricInfo struct {
	label string
	unit  string
	whole bool
}

var metricCatalog = map[models.MetricKey]metricInfo{
	models.MetricPropSize:       {"Propeller Size (mm)", "mm", false},
	models.MetricArmLength:      {"Arm Length (mm)", "mm", false},
	models.MetricDiagonalFrame:  {"Diagonal Frame (mm)", "mm", false},
	models.MetricCenterPlate:    {"Center Plate (mm)", "mm", false},
	models.MetricTotalDiagonal:  {"Total Diagonal (mm)", "mm", false},
	models.MetricTotalThrust:    {"Total Thrust (g)", "g", true},
	models.MetricThrustToWeight: {"Thrust-to-Weight Ratio", "", false},
	models.MetricPowerPerMotor:  {"Power per Motor (W)", "W", false},
	models.MetricTotalPower:     {"Total Power (W)", "W", false},
	models.MetricCurrentDraw:    {"Current Draw (A)", "A", false},
	models.MetricFlightTime:     {"Est. Flight Time (min)", "min", false},
	models.MetricESCRating:      {"ESC Rating Suggestion (A)", "A", true},
}

// MetricLabel returns the display label for a metric key
func MetricLabel(key models.MetricKey) string {
	return metricCatalog[key].label
}

func metric(key models.MetricKey, value float64) models.Metric {
	info := metricCatalog[key]
	return models.Metric{
		Key:   key,
		Label: info.label,
		Unit:  info.unit,
		Value: value,
		Whole: info.whole,
	}
}

// round2 rounds half away from zero to two decimal places. Whole-number
// rounding elsewhere is half to even.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
