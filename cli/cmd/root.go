// ABOUTME: Root command for the dronecalc CLI
// ABOUTME: Handles global flags, engine selection, and launches the TUI by default

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/drone-design-calculator/cli/internal/client"
	"github.com/markalston/drone-design-calculator/cli/internal/engine"
	"github.com/markalston/drone-design-calculator/cli/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
	useRemote  bool
)

const defaultAPIURL = "http://localhost:8080"

// APIURLEnvVar overrides the default backend URL
const APIURLEnvVar = "DRONECALC_API_URL"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "dronecalc",
	Short: "Rule-of-thumb drone design calculator",
	Long: `dronecalc sizes a multirotor frame from a handful of design parameters.

It reports frame geometry, thrust-to-weight ratio, and optional electrical
estimates (power, current draw, flight time, ESC rating). Run without a
subcommand to open the interactive calculator.

Environment Variables:
  DRONECALC_API_URL       Backend API URL (default: http://localhost:8080)
  DRONECALC_SAMPLES_PATH  Directory of sample design files for the TUI
  DRONECALC_NERD_FONTS    Set to 1 to force Nerd Font icons`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newEngine())
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides "+APIURLEnvVar+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().BoolVar(&useRemote, "remote", false, "Calculate through the backend API instead of in-process")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv(APIURLEnvVar); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// IsRemote returns whether calculations should go through the backend
func IsRemote() bool {
	return useRemote
}

// newEngine selects the in-process or backend engine from the global flags
func newEngine() engine.Engine {
	if IsRemote() {
		return engine.NewRemote(client.New(GetAPIURL()))
	}
	return engine.NewLocal()
}
