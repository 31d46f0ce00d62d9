// ABOUTME: Tests for the defaults command
// ABOUTME: Verifies local and backend-sourced defaults output

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/markalston/drone-design-calculator/backend/handlers"
	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/cli/internal/client"
)

func TestDefaultsCommand_LocalHuman(t *testing.T) {
	var buf bytes.Buffer
	if err := runDefaults(context.Background(), nil, &buf, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Propeller diameter (in)", "1500", "14.8", "5200", "one of 4, 6, 8"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestDefaultsCommand_RemoteJSON(t *testing.T) {
	server := httptest.NewServer(handlers.NewHandler(nil, nil).Router(nil))
	defer server.Close()

	var buf bytes.Buffer
	if err := runDefaults(context.Background(), client.New(server.URL), &buf, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp models.DefaultsResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if resp.Inputs.ThrustPerMotorGrams != 1000 {
		t.Errorf("expected default thrust 1000, got %v", resp.Inputs.ThrustPerMotorGrams)
	}
	if resp.Limits.MinMotorKV != 100 {
		t.Errorf("expected min KV 100, got %v", resp.Limits.MinMotorKV)
	}
}

func TestDefaultsCommand_ConnectionError(t *testing.T) {
	var buf bytes.Buffer
	err := runDefaults(context.Background(), client.New("http://localhost:99999"), &buf, false)
	if err == nil {
		t.Fatal("expected connection error")
	}
}

func TestJoinInts(t *testing.T) {
	if got := joinInts([]int{4, 6, 8}); got != "one of 4, 6, 8" {
		t.Errorf("unexpected output %q", got)
	}
}
