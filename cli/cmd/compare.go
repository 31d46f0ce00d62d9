// ABOUTME: Non-interactive what-if comparison command
// ABOUTME: Compares a base design against proposed overrides for CI/CD or scripting

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
	compareCurrent  designFlags
	compareProposed designFlags
	compareWhole    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare current vs proposed design",
	Long: `Run a what-if comparison without the interactive TUI.

The current design comes from the regular design flags (or --file). The
proposed design starts from the current one and applies every --to-* flag.

Example:
  dronecalc compare --electrical --to-rotors 6 --to-capacity 6000 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		current, err := compareCurrent.resolve(cmd.Flags(), basicDefaults())
		if err != nil {
			return err
		}
		proposed, err := compareProposed.resolve(cmd.Flags(), current)
		if err != nil {
			return err
		}
		return runCompare(ctx, newEngine(), os.Stdout, current, proposed, displayStyle(compareWhole), IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCurrent.register(compareCmd.Flags(), "", true)
	compareProposed.register(compareCmd.Flags(), "to-", false)
	compareCmd.Flags().BoolVar(&compareWhole, "whole", false, "Round every metric to a whole number")
}

func runCompare(ctx context.Context, eng engine.Engine, w io.Writer, current, proposed models.DesignInputs, style services.DisplayStyle, jsonOut bool) error {
	result, err := eng.Compare(ctx, current, proposed)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprint(w, formatCompareHuman(result, style))
	return nil
}

// formatCompareHuman renders current, proposed, and change columns per metric
func formatCompareHuman(result *models.DesignComparison, style services.DisplayStyle) string {
	var sb strings.Builder
	sb.WriteString("Design Comparison\n")
	sb.WriteString("=================\n\n")

	labelWidth := len("Metric")
	for _, d := range result.Deltas {
		labelWidth = max(labelWidth, len(d.Label))
	}

	fmt.Fprintf(&sb, "  %-*s  %10s  %10s  %10s\n", labelWidth, "Metric", "Current", "Proposed", "Change")
	for _, d := range result.Deltas {
		fmt.Fprintf(&sb, "  %-*s  %10s  %10s  %10s\n", labelWidth, d.Label,
			formatMetricValue(result.Current, d.Key, d.Current, style),
			formatMetricValue(result.Current, d.Key, d.Proposed, style),
			services.FormatChange(d, style))
	}

	if result.Current.Variant != result.Proposed.Variant {
		fmt.Fprintf(&sb, "\nVariant: %s → %s (electrical metrics only shown when both designs have them)\n",
			result.Current.Variant, result.Proposed.Variant)
	}

	sb.WriteString(formatWarnings(result.Warnings))
	return sb.String()
}

// formatMetricValue formats value using the display rules of the metric with the given key
func formatMetricValue(metrics models.DesignMetrics, key models.MetricKey, value float64, style services.DisplayStyle) string {
	m := models.Metric{Key: key, Value: value}
	for _, candidate := range metrics.Metrics {
		if candidate.Key == key {
			m = candidate
			m.Value = value
			break
		}
	}
	return services.FormatValue(m, style)
}
