package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mozuku/internal/diag"
	"mozuku/internal/diagfmt"
	"mozuku/internal/driver"
	"mozuku/internal/morph"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Check Japanese prose in files or directories",
	Long:  `Check runs grammar analysis over plain text and source code comments and reports the findings`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
	checkCmd.Flags().String("fail-level", "warning", "exit nonzero at this severity or above (error|warning|info|hint|none)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	failLevelStr, err := cmd.Flags().GetString("fail-level")
	if err != nil {
		return fmt.Errorf("failed to get fail-level flag: %w", err)
	}
	failLevel, failEnabled, err := parseFailLevel(failLevelStr)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := driver.ListFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stderr, "no checkable files found")
		}
		return nil
	}

	analyzer, err := morph.NewKagome()
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	ctx := cmd.Context()
	var reports []driver.FileReport
	if shouldUseTUI(mode) && !quiet {
		reports, err = runCheckWithUI(ctx, "checking japanese prose", files, analyzer, settings, jobs)
	} else {
		reports, err = driver.CheckPaths(ctx, analyzer, files, settings.Grammar, settings.MaxDiagnostics, jobs, nil)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	// Спаны диагностик индексируют текст анализа, его и показываем.
	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		for _, report := range reports {
			diagfmt.Pretty(os.Stdout, report.Path, report.Result.Analysis, report.Result.Bag, opts)
		}
	case "json":
		outputs := make([]diagfmt.FileJSON, 0, len(reports))
		jsonOpts := diagfmt.JSONOpts{IncludePositions: true}
		for _, report := range reports {
			outputs = append(outputs, diagfmt.BuildFileOutput(report.Path, string(report.Language), report.Result.Analysis, report.Result.Bag, jsonOpts))
		}
		if err := diagfmt.WriteCheckJSON(os.Stdout, outputs); err != nil {
			return fmt.Errorf("failed to encode check output: %w", err)
		}
	}

	if showTimings {
		printCheckTimings(os.Stderr, reports)
	}

	if failEnabled && anyAtLeast(reports, failLevel) {
		// Suppress cobra usage output, findings are already printed
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stderr)
	}
}

func parseFailLevel(value string) (diag.Severity, bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "error":
		return diag.SevError, true, nil
	case "warning":
		return diag.SevWarning, true, nil
	case "info":
		return diag.SevInfo, true, nil
	case "hint":
		return diag.SevHint, true, nil
	case "", "none":
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("invalid --fail-level value %q (expected error|warning|info|hint|none)", value)
	}
}

func anyAtLeast(reports []driver.FileReport, min diag.Severity) bool {
	for _, report := range reports {
		if report.Result.Bag == nil {
			continue
		}
		for _, d := range report.Result.Bag.Items() {
			if d.Severity.AtLeast(min) {
				return true
			}
		}
	}
	return false
}
