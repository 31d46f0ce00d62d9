// ABOUTME: Tests for the Drone Design Calculator API client
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/markalston/drone-design-calculator/backend/models"
)

func TestHealth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			t.Errorf("expected path /api/v1/health, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.HealthResponse{
			Status:  "ok",
			Service: "drone-design-calculator",
			Version: "1.2.3",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", resp.Version)
	}
}

func TestHealth_ConnectionError(t *testing.T) {
	c := New("http://localhost:99999")
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected connection error, got nil")
	}
	if !strings.Contains(err.Error(), "cannot connect to backend at http://localhost:99999") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestHealth_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected error for non-OK status, got nil")
	}
	if err.Error() != "backend error: internal error" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestHealth_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "backend returned status 502" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestHealth_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New(server.URL)
	_, err := c.Health(ctx)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if err.Error() != "request timed out" {
		t.Errorf("expected 'request timed out', got %v", err)
	}
}

func TestHealth_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("http://localhost:8080")
	_, err := c.Health(ctx)
	if err == nil {
		t.Fatal("expected cancel error, got nil")
	}
	if err.Error() != "request canceled" {
		t.Errorf("expected 'request canceled', got %v", err)
	}
}

func TestDefaults_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/design/defaults" {
			t.Errorf("expected path /api/v1/design/defaults, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.DefaultsResponse{
			Inputs: models.DefaultInputs(),
			Limits: models.Limits(),
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Defaults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Inputs.PropellerDiameterInches != 10 {
		t.Errorf("expected default prop 10, got %v", resp.Inputs.PropellerDiameterInches)
	}
	if resp.Inputs.Electrical == nil || resp.Inputs.Electrical.BatteryVoltage != 14.8 {
		t.Errorf("expected default electrical block, got %+v", resp.Inputs.Electrical)
	}
	if len(resp.Limits.RotorCounts) != 3 {
		t.Errorf("expected 3 rotor counts, got %v", resp.Limits.RotorCounts)
	}
}

func TestCalculate_SendsInputsAndDisplay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/design/calculate" {
			t.Errorf("expected path /api/v1/design/calculate, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.URL.Query().Get("display"); got != "whole" {
			t.Errorf("expected display=whole, got %q", got)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}

		var in models.DesignInputs
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if in.RotorCount != 6 {
			t.Errorf("expected rotor_count 6, got %d", in.RotorCount)
		}

		json.NewEncoder(w).Encode(models.CalculateResponse{
			DesignMetrics: models.DesignMetrics{
				Variant: models.VariantBasic,
				Metrics: []models.Metric{{Key: models.MetricPropSize, Label: "Propeller Size (mm)", Value: 254}},
			},
			Display: []models.DisplayRow{{Key: models.MetricPropSize, Label: "Propeller Size (mm)", Value: "254"}},
		})
	}))
	defer server.Close()

	in := models.DefaultInputs()
	in.RotorCount = 6
	in.Electrical = nil

	c := New(server.URL)
	resp, err := c.Calculate(context.Background(), in, "whole")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Variant != models.VariantBasic {
		t.Errorf("expected basic variant, got %s", resp.Variant)
	}
	if v, _ := resp.Value(models.MetricPropSize); v != 254 {
		t.Errorf("expected prop size 254, got %v", v)
	}
	if len(resp.Display) != 1 || resp.Display[0].Value != "254" {
		t.Errorf("unexpected display rows: %+v", resp.Display)
	}
}

func TestCalculate_NoDisplayParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(models.CalculateResponse{})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.Calculate(context.Background(), models.DefaultInputs(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCalculate_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:   "Invalid design inputs",
			Details: "drone_weight_g must be at least 100 (got 0)",
			Code:    http.StatusBadRequest,
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Calculate(context.Background(), models.DesignInputs{}, "")
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	want := "backend error: Invalid design inputs: drone_weight_g must be at least 100 (got 0)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestCompare_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/design/compare" {
			t.Errorf("expected path /api/v1/design/compare, got %s", r.URL.Path)
		}

		var req models.CompareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if req.Current.RotorCount != 4 || req.Proposed.RotorCount != 6 {
			t.Errorf("unexpected rotor counts: current=%d proposed=%d", req.Current.RotorCount, req.Proposed.RotorCount)
		}

		json.NewEncoder(w).Encode(models.DesignComparison{
			Deltas: []models.MetricDelta{
				{Key: models.MetricTotalThrust, Current: 4000, Proposed: 6000, Change: 2000},
			},
			Warnings: []models.DesignWarning{{Severity: models.SeverityInfo, Message: "ESC rating rises"}},
		})
	}))
	defer server.Close()

	current := models.DefaultInputs()
	proposed := current.Clone()
	proposed.RotorCount = 6

	c := New(server.URL)
	resp, err := c.Compare(context.Background(), current, proposed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := resp.Delta(models.MetricTotalThrust)
	if !ok {
		t.Fatal("expected total thrust delta")
	}
	if d.Change != 2000 {
		t.Errorf("expected change 2000, got %v", d.Change)
	}
	if len(resp.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(resp.Warnings))
	}
}

func TestCompare_InvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Compare(context.Background(), models.DefaultInputs(), models.DefaultInputs())
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "invalid response from backend") {
		t.Errorf("unexpected error message: %v", err)
	}
}
