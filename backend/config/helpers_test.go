// ABOUTME: Test helpers for config tests
// ABOUTME: Provides utilities for environment variable management

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// configVars lists every variable Load reads
var configVars = []string{
	EnvFileVar,
	"PORT",
	"CORS_ALLOWED_ORIGINS",
	"MAX_REQUEST_BODY_BYTES",
	"SHUTDOWN_TIMEOUT",
	"SERVICE_VERSION",
	"RATE_LIMIT_ENABLED",
	"RATE_LIMIT_DEFAULT",
	"METRICS_ENABLED",
}

// withCleanEnv unsets every config variable, points the env file at a path
// that does not exist, applies extra, and restores the original values when
// the test finishes.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    withCleanEnv(t, map[string]string{"PORT": "9090"})
//	}
func withCleanEnv(t *testing.T, extra map[string]string) {
	t.Helper()

	original := map[string]string{}
	for _, key := range configVars {
		if value, ok := os.LookupEnv(key); ok {
			original[key] = value
		}
		os.Unsetenv(key)
	}

	t.Cleanup(func() {
		for _, key := range configVars {
			os.Unsetenv(key)
			if value, ok := original[key]; ok {
				os.Setenv(key, value)
			}
		}
	})

	os.Setenv(EnvFileVar, filepath.Join(t.TempDir(), "missing.env"))
	for key, value := range extra {
		os.Setenv(key, value)
	}
}
