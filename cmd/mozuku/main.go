package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mozuku/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mozuku",
	Short: "Japanese grammar checker and language server",
	Long:  `Mozuku checks Japanese prose for grammar slips, in plain text and inside source code comments`,
}

func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum diagnostics per file (0=config default)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this path")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
