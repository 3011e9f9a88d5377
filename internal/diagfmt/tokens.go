package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"mozuku/internal/source"
	"mozuku/internal/token"
)

// TokenOutput описывает один токен в JSON выводе.
type TokenOutput struct {
	Surface   string   `json:"surface"`
	Kind      string   `json:"kind"`
	Modifiers []string `json:"modifiers,omitempty"`
	Feature   string   `json:"feature"`
	StartByte uint32   `json:"start_byte"`
	EndByte   uint32   `json:"end_byte"`
	Line      uint32   `json:"line"`
	Col       uint32   `json:"col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, tokens []token.Token, text *source.Text) error {
	for i, tok := range tokens {
		lc := source.LineCol{Line: 1, Col: 1}
		if text != nil {
			lc = text.LineColForByte(tok.Span.Start)
		}

		fmt.Fprintf(w, "%3d: %-12s %q at %d:%d", i+1, tok.Kind.String(), tok.Surface, lc.Line, lc.Col)

		if tok.Modifiers != 0 {
			fmt.Fprintf(w, " [%s]", tok.Modifiers)
		}
		if v := tok.Feature.Base; v != "" && v != token.Absent && v != tok.Surface {
			fmt.Fprintf(w, " 原形=%s", v)
		}
		if v := tok.Feature.Reading; v != "" && v != token.Absent {
			fmt.Fprintf(w, " 読み=%s", v)
		}

		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []token.Token, text *source.Text) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Surface:   tok.Surface,
			Kind:      tok.Kind.String(),
			Modifiers: tok.Modifiers.Names(),
			Feature:   tok.Feature.CSV(),
			StartByte: tok.Span.Start,
			EndByte:   tok.Span.End,
			Line:      1,
			Col:       1,
		}
		if text != nil {
			lc := text.LineColForByte(tok.Span.Start)
			out.Line, out.Col = lc.Line, lc.Col
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
