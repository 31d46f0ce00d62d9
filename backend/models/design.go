// ABOUTME: Data models for drone design inputs and the computed metric table
// ABOUTME: Inputs carry optional electrical ratings; metrics keep a fixed order

package models

// Default input values offered by the presentation layer
const (
	DefaultPropellerDiameterInches      = 10.0
	DefaultDroneWeightGrams             = 1500.0
	DefaultThrustPerMotorGrams          = 1000.0
	DefaultRotorCount                   = 4
	DefaultBatteryVoltage               = 14.8
	DefaultBatteryCapacityMilliampHours = 5200.0
	DefaultMotorKV                      = 1000.0
)

// Input floors enforced before a calculation is requested
const (
	MinPropellerDiameterInches      = 1.0
	MinDroneWeightGrams             = 100.0
	MinThrustPerMotorGrams          = 100.0
	MinBatteryVoltage               = 3.0
	MinBatteryCapacityMilliampHours = 500.0
	MinMotorKV                      = 100.0
)

// SupportedRotorCounts lists the airframe layouts the calculator offers
var SupportedRotorCounts = []int{4, 6, 8}

// DesignInputs is one atomic set of user-supplied design parameters.
// A nil Electrical block selects the basic variant.
type DesignInputs struct {
	PropellerDiameterInches float64           `json:"propeller_diameter_in" validate:"gte=1"`
	DroneWeightGrams        float64           `json:"drone_weight_g" validate:"gte=100"`
	ThrustPerMotorGrams     float64           `json:"thrust_per_motor_g" validate:"gte=100"`
	RotorCount              int               `json:"rotor_count" validate:"oneof=4 6 8"`
	Electrical              *ElectricalInputs `json:"electrical,omitempty" validate:"omitempty"`
}

// ElectricalInputs holds the battery and motor ratings of the extended variant
type ElectricalInputs struct {
	BatteryVoltage               float64 `json:"battery_voltage_v" validate:"gte=3"`
	BatteryCapacityMilliampHours float64 `json:"battery_capacity_mah" validate:"gte=500"`
	MotorKV                      float64 `json:"motor_kv" validate:"gte=100"`
}

// DefaultInputs returns the full default design, electrical block included
func DefaultInputs() DesignInputs {
	return DesignInputs{
		PropellerDiameterInches: DefaultPropellerDiameterInches,
		DroneWeightGrams:        DefaultDroneWeightGrams,
		ThrustPerMotorGrams:     DefaultThrustPerMotorGrams,
		RotorCount:              DefaultRotorCount,
		Electrical:              DefaultElectrical(),
	}
}

// DefaultElectrical returns the default battery and motor ratings
func DefaultElectrical() *ElectricalInputs {
	return &ElectricalInputs{
		BatteryVoltage:               DefaultBatteryVoltage,
		BatteryCapacityMilliampHours: DefaultBatteryCapacityMilliampHours,
		MotorKV:                      DefaultMotorKV,
	}
}

// ApplyDefaults fills an unset rotor count with the quadcopter default.
// The calculator itself never defaults; this runs at the input boundary.
func (in *DesignInputs) ApplyDefaults() {
	if in.RotorCount == 0 {
		in.RotorCount = DefaultRotorCount
	}
}

// HasElectrical reports whether the extended variant inputs are present
func (in DesignInputs) HasElectrical() bool {
	return in.Electrical != nil
}

// Clone returns a deep copy so callers can derive what-if designs safely
func (in DesignInputs) Clone() DesignInputs {
	out := in
	if in.Electrical != nil {
		e := *in.Electrical
		out.Electrical = &e
	}
	return out
}

// InputLimits describes the floors a client should enforce on its form
type InputLimits struct {
	MinPropellerDiameterInches      float64 `json:"min_propeller_diameter_in"`
	MinDroneWeightGrams             float64 `json:"min_drone_weight_g"`
	MinThrustPerMotorGrams          float64 `json:"min_thrust_per_motor_g"`
	MinBatteryVoltage               float64 `json:"min_battery_voltage_v"`
	MinBatteryCapacityMilliampHours float64 `json:"min_battery_capacity_mah"`
	MinMotorKV                      float64 `json:"min_motor_kv"`
	RotorCounts                     []int   `json:"rotor_counts"`
}

// Limits returns the input floors
func Limits() InputLimits {
	return InputLimits{
		MinPropellerDiameterInches:      MinPropellerDiameterInches,
		MinDroneWeightGrams:             MinDroneWeightGrams,
		MinThrustPerMotorGrams:          MinThrustPerMotorGrams,
		MinBatteryVoltage:               MinBatteryVoltage,
		MinBatteryCapacityMilliampHours: MinBatteryCapacityMilliampHours,
		MinMotorKV:                      MinMotorKV,
		RotorCounts:                     append([]int(nil), SupportedRotorCounts...),
	}
}

// Variant names the metric set a calculation produced
type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantExtended Variant = "extended"
)

// MetricKey identifies a metric independent of its display label
type MetricKey string

const (
	MetricPropSize       MetricKey = "prop_size_mm"
	MetricArmLength      MetricKey = "arm_length_mm"
	MetricDiagonalFrame  MetricKey = "diagonal_frame_mm"
	MetricCenterPlate    MetricKey = "center_plate_mm"
	MetricTotalDiagonal  MetricKey = "total_diagonal_mm"
	MetricTotalThrust    MetricKey = "total_thrust_g"
	MetricThrustToWeight MetricKey = "thrust_to_weight"
	MetricPowerPerMotor  MetricKey = "power_per_motor_w"
	MetricTotalPower     MetricKey = "total_power_w"
	MetricCurrentDraw    MetricKey = "current_draw_a"
	MetricFlightTime     MetricKey = "flight_time_min"
	MetricESCRating      MetricKey = "esc_rating_a"
)

// Metric is one labeled row of the result table
type Metric struct {
	Key   MetricKey `json:"key"`
	Label string    `json:"label"`
	Unit  string    `json:"unit,omitempty"`
	Value float64   `json:"value"`
	// Whole marks metrics reported as whole numbers
	Whole bool `json:"whole,omitempty"`
}

// Warning severities
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// DesignWarning flags a degenerate or marginal result without failing the calculation
type DesignWarning struct {
	Severity string    `json:"severity"`
	Metric   MetricKey `json:"metric,omitempty"`
	Message  string    `json:"message"`
}

// DesignMetrics is the ordered output of one calculation
type DesignMetrics struct {
	Variant  Variant         `json:"variant"`
	Metrics  []Metric        `json:"metrics"`
	Warnings []DesignWarning `json:"warnings,omitempty"`
}

// Value returns the value of the metric with the given key
func (m DesignMetrics) Value(key MetricKey) (float64, bool) {
	for _, metric := range m.Metrics {
		if metric.Key == key {
			return metric.Value, true
		}
	}
	return 0, false
}

// Has reports whether the metric table contains the given key
func (m DesignMetrics) Has(key MetricKey) bool {
	_, ok := m.Value(key)
	return ok
}

// Labels returns the metric labels in table order
func (m DesignMetrics) Labels() []string {
	labels := make([]string, len(m.Metrics))
	for i, metric := range m.Metrics {
		labels[i] = metric.Label
	}
	return labels
}

// HasCritical reports whether any warning is critical
func (m DesignMetrics) HasCritical() bool {
	for _, w := range m.Warnings {
		if w.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
