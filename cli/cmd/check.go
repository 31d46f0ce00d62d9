// ABOUTME: Check command for the dronecalc CLI
// ABOUTME: Validates design thresholds for CI/CD pipelines

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
	"github.com/markalston/drone-design-calculator/cli/internal/engine"
)

var (
	checkDesign   designFlags
	minTWR        float64
	minFlightTime float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check design thresholds",
	Long: `Check a design against minimum thresholds and exit non-zero if any fail.

The flight time check runs only when --min-flight-time is above zero and
needs electrical inputs.

Exit codes:
  0 - All checks passed
  1 - One or more thresholds not met
  2 - Error (connectivity, invalid input, invalid threshold)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		in, err := checkDesign.resolve(cmd.Flags(), basicDefaults())
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}

		exitCode := runCheck(ctx, newEngine(), os.Stdout, in, checkThresholds{minTWR: minTWR, minFlightTime: minFlightTime}, IsJSONOutput())
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkDesign.register(checkCmd.Flags(), "", true)
	checkCmd.Flags().Float64Var(&minTWR, "min-twr", services.MinComfortableTWR, "Minimum thrust-to-weight ratio")
	checkCmd.Flags().Float64Var(&minFlightTime, "min-flight-time", 0, "Minimum estimated flight time in minutes (0 skips the check)")
}

// checkThresholds holds the minimums a design must meet
type checkThresholds struct {
	minTWR        float64
	minFlightTime float64
}

// checkResult represents the result of a single threshold check
type checkResult struct {
	name      string
	value     float64
	threshold float64
	unit      string
	passed    bool
}

// runCheck executes the threshold checks and returns exit code
func runCheck(ctx context.Context, eng engine.Engine, w io.Writer, in models.DesignInputs, th checkThresholds, jsonOut bool) int {
	if err := validateThresholds(th); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if th.minFlightTime > 0 && in.Electrical == nil {
		fmt.Fprintln(w, "Error: --min-flight-time needs electrical inputs (use --electrical or --voltage/--capacity/--kv)")
		return 2
	}

	result, err := eng.Calculate(ctx, in)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results := performChecks(result, th)
	if jsonOut {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	if _, failed := countResults(results); failed > 0 {
		return 1
	}
	return 0
}

func validateThresholds(th checkThresholds) error {
	if th.minTWR < 0 {
		return fmt.Errorf("--min-twr must not be negative")
	}
	if th.minFlightTime < 0 {
		return fmt.Errorf("--min-flight-time must not be negative")
	}
	return nil
}

// performChecks runs every configured threshold check against the metrics
func performChecks(result *models.DesignMetrics, th checkThresholds) []checkResult {
	var results []checkResult

	twr, _ := result.Value(models.MetricThrustToWeight)
	results = append(results, checkResult{
		name:      "Thrust-to-weight",
		value:     twr,
		threshold: th.minTWR,
		unit:      ":1",
		passed:    twr >= th.minTWR,
	})

	if th.minFlightTime > 0 {
		flight, _ := result.Value(models.MetricFlightTime)
		results = append(results, checkResult{
			name:      "Flight time",
			value:     flight,
			threshold: th.minFlightTime,
			unit:      " min",
			passed:    flight >= th.minFlightTime,
		})
	}

	return results
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult) string {
	var sb strings.Builder

	for _, r := range results {
		symbol := "✓"
		if !r.passed {
			symbol = "✗"
		}
		fmt.Fprintf(&sb, "%s %s: %.2f%s (minimum: %.2f%s)\n",
			symbol, r.name, r.value, r.unit, r.threshold, r.unit)
	}

	passed, failed := countResults(results)
	if failed > 0 {
		fmt.Fprintf(&sb, "\nFAILED: %d check(s) below minimum", failed)
	} else {
		fmt.Fprintf(&sb, "\nPASSED: All %d check(s) meet minimums", passed)
	}

	return sb.String()
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult) string {
	_, failed := countResults(results)

	checks := make([]map[string]interface{}, len(results))
	for i, r := range results {
		checks[i] = map[string]interface{}{
			"name":      r.name,
			"value":     r.value,
			"threshold": r.threshold,
			"unit":      strings.TrimSpace(r.unit),
			"passed":    r.passed,
		}
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]interface{}{
		"status": status,
		"checks": checks,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
