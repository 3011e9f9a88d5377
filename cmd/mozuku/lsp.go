package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mozuku/internal/logging"
	"mozuku/internal/lsp"
	"mozuku/internal/morph"
	"mozuku/internal/wiki"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the mozuku language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func init() {
	lspCmd.Flags().String("log-level", "info", "log verbosity (debug|info|warn|error)")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logger := logging.New(logLevel)

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Без анализатора сервер живёт, но отдаёт пустые токены.
	var analyzer morph.Analyzer
	if kg, err := morph.NewKagome(); err != nil {
		logger.Warn("tokenizer unavailable", "error", err)
	} else {
		analyzer = kg
	}

	var summaries lsp.Summarizer
	if settings.Wikipedia {
		cache, err := wiki.NewCache()
		if err != nil {
			logger.Warn("summary cache unavailable", "error", err)
		} else {
			var disk *wiki.DiskCache
			if settings.WikipediaDisk {
				disk, err = wiki.OpenDiskCache("mozuku")
				if err != nil {
					logger.Warn("summary disk cache unavailable", "error", err)
				}
			}
			summaries = wiki.NewClient(cache, disk)
		}
	}

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Debounce:       settings.Debounce,
		Analyzer:       analyzer,
		Summaries:      summaries,
		Config:         settings.Grammar,
		MaxDiagnostics: settings.MaxDiagnostics,
		Logger:         logger,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
