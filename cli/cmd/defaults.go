// ABOUTME: Defaults command for the dronecalc CLI
// ABOUTME: Prints the default design inputs and the accepted input floors

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
	"github.com/markalston/drone-design-calculator/cli/internal/client"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show default design inputs and limits",
	Long: `Show the default design inputs and the minimum accepted values.

With --remote the values are read from the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		var c *client.Client
		if IsRemote() {
			c = client.New(GetAPIURL())
		}
		return runDefaults(ctx, c, os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}

// runDefaults prints defaults from the backend when c is set, else from the local models
func runDefaults(ctx context.Context, c *client.Client, w io.Writer, jsonOut bool) error {
	resp := &models.DefaultsResponse{Inputs: models.DefaultInputs(), Limits: models.Limits()}
	if c != nil {
		var err error
		if resp, err = c.Defaults(ctx); err != nil {
			return err
		}
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprint(w, formatDefaultsHuman(resp))
	return nil
}

// formatDefaultsHuman renders defaults next to their floors, one input per line
func formatDefaultsHuman(resp *models.DefaultsResponse) string {
	in := resp.Inputs
	lim := resp.Limits

	var sb strings.Builder
	sb.WriteString("Design Defaults\n")
	sb.WriteString("===============\n\n")
	fmt.Fprintf(&sb, "  %-26s %10s  %s\n", "Input", "Default", "Minimum")
	row := func(label string, value, minimum float64) {
		fmt.Fprintf(&sb, "  %-26s %10g  %g\n", label, value, minimum)
	}
	row("Propeller diameter (in)", in.PropellerDiameterInches, lim.MinPropellerDiameterInches)
	row("Drone weight (g)", in.DroneWeightGrams, lim.MinDroneWeightGrams)
	row("Thrust per motor (g)", in.ThrustPerMotorGrams, lim.MinThrustPerMotorGrams)
	fmt.Fprintf(&sb, "  %-26s %10d  %s\n", "Rotor count", in.RotorCount, joinInts(lim.RotorCounts))

	if in.Electrical != nil {
		row("Battery voltage (V)", in.Electrical.BatteryVoltage, lim.MinBatteryVoltage)
		row("Battery capacity (mAh)", in.Electrical.BatteryCapacityMilliampHours, lim.MinBatteryCapacityMilliampHours)
		row("Motor KV", in.Electrical.MotorKV, lim.MinMotorKV)
	}
	return sb.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "one of " + strings.Join(parts, ", ")
}
