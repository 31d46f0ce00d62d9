// ABOUTME: Non-interactive design calculation command
// ABOUTME: Prints the ordered metric table and warnings for one design

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
	calcDesign designFlags
	calcWhole  bool
)

var calculateCmd = &cobra.Command{
	Use:     "calculate",
	Aliases: []string{"calc"},
	Short:   "Calculate metrics for a drone design",
	Long: `Calculate frame geometry and thrust metrics for one design.

Electrical estimates are added when --electrical or any of --voltage,
--capacity, or --kv is given, or when the design file has an electrical block.

Example:
  dronecalc calculate --prop 5 --weight 650 --thrust 900 --kv 2400 --voltage 22.2
  dronecalc calculate --file samples/5in-freestyle.yaml --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		in, err := calcDesign.resolve(cmd.Flags(), basicDefaults())
		if err != nil {
			return err
		}
		return runCalculate(ctx, newEngine(), os.Stdout, in, displayStyle(calcWhole), IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(calculateCmd)
	calcDesign.register(calculateCmd.Flags(), "", true)
	calculateCmd.Flags().BoolVar(&calcWhole, "whole", false, "Round every metric to a whole number")
}

func displayStyle(whole bool) services.DisplayStyle {
	if whole {
		return services.DisplayWhole
	}
	return services.DisplayPrecise
}

func runCalculate(ctx context.Context, eng engine.Engine, w io.Writer, in models.DesignInputs, style services.DisplayStyle, jsonOut bool) error {
	result, err := eng.Calculate(ctx, in)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(models.CalculateResponse{
			DesignMetrics: *result,
			Display:       services.FormatDisplay(*result, style),
		})
	}

	fmt.Fprint(w, formatCalculateHuman(result, style))
	return nil
}

// formatCalculateHuman renders the metric table and warnings as aligned text
func formatCalculateHuman(result *models.DesignMetrics, style services.DisplayStyle) string {
	var sb strings.Builder

	title := fmt.Sprintf("Drone Design (%s)", result.Variant)
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	rows := services.FormatDisplay(*result, style)
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row.Label))
	}
	for _, row := range rows {
		fmt.Fprintf(&sb, "  %-*s  %s\n", labelWidth, row.Label, row.Value)
	}

	sb.WriteString(formatWarnings(result.Warnings))
	return sb.String()
}

// formatWarnings renders warnings as a trailing section, or nothing
func formatWarnings(warnings []models.DesignWarning) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\nWarnings:\n")
	for _, warn := range warnings {
		fmt.Fprintf(&sb, "  [%s] %s\n", warn.Severity, warn.Message)
	}
	return sb.String()
}
