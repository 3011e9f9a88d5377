package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mozuku/internal/config"
)

// loadSettings resolves mozuku.toml from the working directory upward
// and applies flag overrides on top.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Discover(".")
	if err != nil {
		return config.Settings{}, err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics > 0 {
		settings.MaxDiagnostics = maxDiagnostics
	}
	return settings, nil
}

// useColor решает по флагу --color и целевому потоку.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
