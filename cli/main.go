// ABOUTME: Entry point for the dronecalc CLI
// ABOUTME: Interactive calculator by default, scriptable subcommands for CI/CD

package main

import (
	"fmt"
	"os"

	"github.com/markalston/drone-design-calculator/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
