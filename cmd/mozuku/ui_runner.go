package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mozuku/internal/checkrun"
	"mozuku/internal/config"
	"mozuku/internal/driver"
	"mozuku/internal/morph"
	"mozuku/internal/ui"
)

type checkOutcome struct {
	reports []driver.FileReport
	err     error
}

// runCheckWithUI renders progress on stderr while the check runs, so
// stdout stays clean for the report itself.
func runCheckWithUI(ctx context.Context, title string, files []string, analyzer morph.Analyzer, settings config.Settings, jobs int) ([]driver.FileReport, error) {
	events := make(chan checkrun.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		reports, err := driver.CheckPaths(ctx, analyzer, files, settings.Grammar, settings.MaxDiagnostics, jobs, checkrun.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{reports: reports, err: err}
		close(events)
	}()

	model := ui.NewCheckModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.reports, uiErr
	}
	return outcome.reports, outcome.err
}
