package services

import (
	"testing"

	"github.com/markalston/drone-design-calculator/backend/models"
)

func TestFormatDisplay_Precise(t *testing.T) {
	rows := FormatDisplay(NewDesignCalculator().Compute(extendedInputs()), DisplayPrecise)

	want := map[models.MetricKey]string{
		models.MetricPropSize:       "254.00",
		models.MetricCenterPlate:    "100.58",
		models.MetricTotalThrust:    "4,000",
		models.MetricThrustToWeight: "2.67",
		models.MetricFlightTime:     "62.40",
		models.MetricESCRating:      "1",
	}
	if len(rows) != 12 {
		t.Fatalf("Expected 12 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if w, ok := want[row.Key]; ok && row.Value != w {
			t.Errorf("%s: expected %q, got %q", row.Key, w, row.Value)
		}
	}
	if rows[0].Label != "Propeller Size (mm)" {
		t.Errorf("Expected first label Propeller Size (mm), got %q", rows[0].Label)
	}
}

func TestFormatDisplay_Whole(t *testing.T) {
	rows := FormatDisplay(NewDesignCalculator().Compute(basicInputs()), DisplayWhole)

	want := []string{"254", "140", "279", "101", "380", "4,000", "3"}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		if rows[i].Value != w {
			t.Errorf("%s: expected %q, got %q", rows[i].Key, w, rows[i].Value)
		}
	}
}

func TestFormatDisplay_WholeRoundsHalfToEven(t *testing.T) {
	in := basicInputs()
	in.DroneWeightGrams = 1600 // TWR exactly 2.5

	result := NewDesignCalculator().Compute(in)
	if v, _ := result.Value(models.MetricThrustToWeight); v != 2.5 {
		t.Fatalf("Expected TWR 2.5, got %v", v)
	}

	rows := FormatDisplay(result, DisplayWhole)
	if got := rows[len(rows)-1].Value; got != "2" {
		t.Errorf("Expected TWR 2.5 to render as 2, got %q", got)
	}

	tests := []struct {
		value float64
		want  string
	}{
		{0.5, "0"},
		{1.5, "2"},
		{3.5, "4"},
		{2.51, "3"},
		{1234.5, "1,234"},
	}
	for _, tt := range tests {
		m := models.Metric{Key: models.MetricTotalPower, Value: tt.value}
		if got := FormatValue(m, DisplayWhole); got != tt.want {
			t.Errorf("FormatValue(%v): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestFormatValue_LargeValues(t *testing.T) {
	m := models.Metric{Key: models.MetricTotalPower, Value: 12345.678}

	if got := FormatValue(m, DisplayPrecise); got != "12,345.68" {
		t.Errorf("Expected 12,345.68, got %q", got)
	}
	if got := FormatValue(m, DisplayWhole); got != "12,346" {
		t.Errorf("Expected 12,346, got %q", got)
	}
}

func TestFormatChange(t *testing.T) {
	tests := []struct {
		delta models.MetricDelta
		style DisplayStyle
		want  string
	}{
		{models.MetricDelta{Key: models.MetricTotalThrust, Change: 2000}, DisplayPrecise, "+2,000"},
		{models.MetricDelta{Key: models.MetricFlightTime, Change: -31.2}, DisplayPrecise, "-31.20"},
		{models.MetricDelta{Key: models.MetricFlightTime, Change: -31.2}, DisplayWhole, "-31"},
		{models.MetricDelta{Key: models.MetricPropSize, Change: 0}, DisplayPrecise, "0.00"},
		{models.MetricDelta{Key: models.MetricThrustToWeight, Change: 2.5}, DisplayWhole, "+2"},
	}
	for _, tt := range tests {
		if got := FormatChange(tt.delta, tt.style); got != tt.want {
			t.Errorf("FormatChange(%v, %s): expected %q, got %q", tt.delta.Change, tt.style, tt.want, got)
		}
	}
}

func TestParseDisplayStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    DisplayStyle
		wantErr bool
	}{
		{"", DisplayPrecise, false},
		{"precise", DisplayPrecise, false},
		{"whole", DisplayWhole, false},
		{"fancy", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDisplayStyle(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDisplayStyle(%q): unexpected error state %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDisplayStyle(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
