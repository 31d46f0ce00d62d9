// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds a server from environment config the way main.go does

package e2e

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/markalston/drone-design-calculator/backend/config"
	"github.com/markalston/drone-design-calculator/backend/handlers"
	"github.com/markalston/drone-design-calculator/backend/metrics"
	"github.com/markalston/drone-design-calculator/backend/middleware"
)

// withTestEnv sets the given variables, and points the env file at a path
// that does not exist, restoring the original values on cleanup.
func withTestEnv(t *testing.T, vars map[string]string) {
	t.Helper()

	vars[config.EnvFileVar] = filepath.Join(t.TempDir(), "none.env")
	for key, value := range vars {
		original, had := os.LookupEnv(key)
		os.Setenv(key, value)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

// newTestServer loads config from the environment and serves the full router.
func newTestServer(t *testing.T, vars map[string]string) *httptest.Server {
	t.Helper()
	if vars == nil {
		vars = map[string]string{}
	}
	withTestEnv(t, vars)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector, err = metrics.NewCollector(prometheus.NewRegistry())
		if err != nil {
			t.Fatalf("NewCollector: %v", err)
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
	}

	server := httptest.NewServer(handlers.NewHandler(cfg, collector).Router(limiter))
	t.Cleanup(server.Close)
	return server
}
