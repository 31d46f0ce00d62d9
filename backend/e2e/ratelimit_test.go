// ABOUTME: Integration tests for rate limiting
// ABOUTME: Verifies RATE_LIMIT_* settings flow from config to 429 responses

package e2e

import (
	"bytes"
	"net/http"
	"testing"
)

const calcBody = `{"propeller_diameter_in": 10, "drone_weight_g": 1500, "thrust_per_motor_g": 1000, "rotor_count": 4}`

func TestRateLimitIntegration_Enforced(t *testing.T) {
	server := newTestServer(t, map[string]string{"RATE_LIMIT_DEFAULT": "3"})

	var last *http.Response
	for i := 0; i < 4; i++ {
		resp, err := http.Post(server.URL+"/api/v1/design/calculate", "application/json", bytes.NewReader([]byte(calcBody)))
		if err != nil {
			t.Fatalf("Request %d failed: %v", i+1, err)
		}
		resp.Body.Close()
		if i < 3 && resp.StatusCode != http.StatusOK {
			t.Errorf("Request %d: expected 200, got %d", i+1, resp.StatusCode)
		}
		last = resp
	}

	if last.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected 4th request to be 429, got %d", last.StatusCode)
	}
	if last.Header.Get("Retry-After") == "" {
		t.Error("Expected Retry-After header on 429")
	}
}

func TestRateLimitIntegration_Disabled(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"RATE_LIMIT_ENABLED": "false",
		"RATE_LIMIT_DEFAULT": "1",
	})

	for i := 0; i < 5; i++ {
		resp, err := http.Post(server.URL+"/api/v1/design/calculate", "application/json", bytes.NewReader([]byte(calcBody)))
		if err != nil {
			t.Fatalf("Request %d failed: %v", i+1, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Request %d: expected 200 with limiting disabled, got %d", i+1, resp.StatusCode)
		}
	}
}
