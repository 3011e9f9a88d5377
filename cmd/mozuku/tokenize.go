package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mozuku/internal/diagfmt"
	"mozuku/internal/driver"
	"mozuku/internal/extract"
	"mozuku/internal/morph"
	"mozuku/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Tokenize Japanese text into morphemes",
	Long:  `Tokenize splits text into morphemes and prints each with its part of speech features`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	// Читаем вход: файл или stdin при "-".
	var content string
	lang := extract.Japanese
	if filePath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		content = string(data)
	} else {
		text, err := source.Load(filePath)
		if err != nil {
			return fmt.Errorf("failed to load file: %w", err)
		}
		content = text.String()
		if l, ok := extract.FromPath(filePath); ok {
			lang = l
		}
	}

	analyzer, err := morph.NewKagome()
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	p := driver.Prepare(cmd.Context(), string(lang), content)
	tokens, _ := driver.Tokenize(analyzer, p.AnalysisText)
	analysis := source.FromString(p.AnalysisText)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, analysis)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens, analysis)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
