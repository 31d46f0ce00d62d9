package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/markalston/drone-design-calculator/backend/config"
	"github.com/markalston/drone-design-calculator/backend/models"
)

const extendedBody = `{
	"propeller_diameter_in": 10,
	"drone_weight_g": 1500,
	"thrust_per_motor_g": 1000,
	"rotor_count": 4,
	"electrical": {"battery_voltage_v": 14.8, "battery_capacity_mah": 5200, "motor_kv": 1000}
}`

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

func TestHealthHandler(t *testing.T) {
	h := NewHandler(&config.Config{Version: "1.2.3"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Service != "drone-design-calculator" || resp.Version != "1.2.3" {
		t.Errorf("Unexpected health response: %+v", resp)
	}
}

func TestHealthHandler_NilConfig(t *testing.T) {
	h := NewHandler(nil, nil)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var resp models.HealthResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Version != "dev" {
		t.Errorf("Expected version dev, got %q", resp.Version)
	}
}

func TestDefaultsHandler(t *testing.T) {
	h := NewHandler(nil, nil)

	w := httptest.NewRecorder()
	h.Defaults(w, httptest.NewRequest(http.MethodGet, "/api/v1/design/defaults", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp models.DefaultsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Inputs.RotorCount != 4 || resp.Inputs.Electrical == nil {
		t.Errorf("Unexpected default inputs: %+v", resp.Inputs)
	}
	if resp.Limits.MinPropellerDiameterInches != 1 || len(resp.Limits.RotorCounts) != 3 {
		t.Errorf("Unexpected limits: %+v", resp.Limits)
	}
}

func TestCalculateHandler_Extended(t *testing.T) {
	h := NewHandler(nil, nil)

	w := postJSON(t, h.Calculate, "/api/v1/design/calculate", extendedBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.CalculateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Variant != models.VariantExtended {
		t.Errorf("Expected extended variant, got %s", resp.Variant)
	}
	if len(resp.Metrics) != 12 {
		t.Errorf("Expected 12 metrics, got %d", len(resp.Metrics))
	}
	if v, _ := resp.Value(models.MetricFlightTime); v != 62.4 {
		t.Errorf("Expected flight time 62.4, got %v", v)
	}
	if len(resp.Display) != 0 {
		t.Errorf("Expected no display rows without ?display, got %d", len(resp.Display))
	}
}

func TestCalculateHandler_DefaultsRotorCount(t *testing.T) {
	h := NewHandler(nil, nil)

	body := `{"propeller_diameter_in": 10, "drone_weight_g": 1500, "thrust_per_motor_g": 1000}`
	w := postJSON(t, h.Calculate, "/api/v1/design/calculate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.CalculateResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if v, _ := resp.Value(models.MetricTotalThrust); v != 4000 {
		t.Errorf("Expected total thrust 4000 with default 4 rotors, got %v", v)
	}
	if resp.Variant != models.VariantBasic {
		t.Errorf("Expected basic variant, got %s", resp.Variant)
	}
}

func TestCalculateHandler_DisplayWhole(t *testing.T) {
	h := NewHandler(nil, nil)

	w := postJSON(t, h.Calculate, "/api/v1/design/calculate?display=whole", extendedBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp models.CalculateResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Display) != 12 {
		t.Fatalf("Expected 12 display rows, got %d", len(resp.Display))
	}
	if resp.Display[5].Value != "4,000" {
		t.Errorf("Expected total thrust 4,000, got %q", resp.Display[5].Value)
	}
}

func TestCalculateHandler_InvalidDisplay(t *testing.T) {
	h := NewHandler(nil, nil)

	w := postJSON(t, h.Calculate, "/api/v1/design/calculate?display=roman", extendedBody)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestCalculateHandler_InvalidJSON(t *testing.T) {
	h := NewHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"propeller_diameter_in": `},
		{"empty", ``},
		{"unknown field", `{"propeller_diameter_in": 10, "wingspan": 3}`},
		{"trailing data", `{"propeller_diameter_in": 10} {}`},
		{"wrong type", `{"propeller_diameter_in": "ten"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h.Calculate, "/api/v1/design/calculate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
			if resp := decodeError(t, w); resp.Code != http.StatusBadRequest {
				t.Errorf("Expected code 400 in body, got %d", resp.Code)
			}
		})
	}
}

func TestCalculateHandler_BelowFloors(t *testing.T) {
	h := NewHandler(nil, nil)

	body := `{"propeller_diameter_in": 10, "drone_weight_g": 0, "thrust_per_motor_g": 1000, "rotor_count": 5}`
	w := postJSON(t, h.Calculate, "/api/v1/design/calculate", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	resp := decodeError(t, w)
	if resp.Error != "Invalid design inputs" {
		t.Errorf("Unexpected error message %q", resp.Error)
	}
	if !strings.Contains(resp.Details, "drone_weight_g") || !strings.Contains(resp.Details, "rotor_count") {
		t.Errorf("Expected both violations in details, got %q", resp.Details)
	}
}

func TestCalculateHandler_OverflowingInputs(t *testing.T) {
	h := NewHandler(nil, nil)

	body := `{"propeller_diameter_in": 1e308, "drone_weight_g": 1500, "thrust_per_motor_g": 1000, "rotor_count": 4}`
	w := postJSON(t, h.Calculate, "/api/v1/design/calculate", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	resp := decodeError(t, w)
	if resp.Error != "Invalid design inputs" {
		t.Errorf("Unexpected error message %q", resp.Error)
	}
	if !strings.Contains(resp.Details, "prop_size_mm overflows") {
		t.Errorf("Expected overflow details, got %q", resp.Details)
	}
}

func TestCompareHandler_OverflowingProposed(t *testing.T) {
	h := NewHandler(nil, nil)

	body := `{"current": ` + extendedBody + `, "proposed": {"propeller_diameter_in": 10, "drone_weight_g": 1500, "thrust_per_motor_g": 1e308, "rotor_count": 8}}`
	w := postJSON(t, h.Compare, "/api/v1/design/compare", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); !strings.HasPrefix(resp.Details, "proposed design: ") {
		t.Errorf("Expected proposed scope, got %q", resp.Details)
	}
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	h := NewHandler(nil, nil)

	w := httptest.NewRecorder()
	h.writeJSON(w, http.StatusOK, map[string]float64{"value": math.Inf(1)})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Error != "Failed to encode response" {
		t.Errorf("Unexpected error message %q", resp.Error)
	}
}

func TestCalculateHandler_BodyTooLarge(t *testing.T) {
	h := NewHandler(&config.Config{MaxRequestBodyBytes: 64}, nil)

	body := `{"propeller_diameter_in": 10, "drone_weight_g": 1500` + strings.Repeat(" ", 128) + `}`
	w := postJSON(t, h.Calculate, "/api/v1/design/calculate", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Error != "Request body too large" {
		t.Errorf("Expected body too large error, got %q", resp.Error)
	}
}

func TestCompareHandler(t *testing.T) {
	h := NewHandler(nil, nil)

	var buf bytes.Buffer
	buf.WriteString(`{"current": `)
	buf.WriteString(extendedBody)
	buf.WriteString(`, "proposed": {"propeller_diameter_in": 10, "drone_weight_g": 1500, "thrust_per_motor_g": 1000, "rotor_count": 6,
		"electrical": {"battery_voltage_v": 14.8, "battery_capacity_mah": 5200, "motor_kv": 1000}}}`)

	w := postJSON(t, h.Compare, "/api/v1/design/compare", buf.String())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.DesignComparison
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	d, ok := resp.Delta(models.MetricTotalThrust)
	if !ok || d.Change != 2000 {
		t.Errorf("Expected thrust change 2000, got %+v", d)
	}
	if len(resp.Deltas) != 12 {
		t.Errorf("Expected 12 deltas, got %d", len(resp.Deltas))
	}
}

func TestCompareHandler_InvalidProposed(t *testing.T) {
	h := NewHandler(nil, nil)

	body := `{"current": ` + extendedBody + `, "proposed": {"propeller_diameter_in": 0.5, "drone_weight_g": 1500, "thrust_per_motor_g": 1000}}`
	w := postJSON(t, h.Compare, "/api/v1/design/compare", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if !strings.HasPrefix(resp.Details, "proposed design:") {
		t.Errorf("Expected details scoped to proposed design, got %q", resp.Details)
	}
}
