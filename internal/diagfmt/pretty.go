package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mozuku/internal/diag"
	"mozuku/internal/source"
)

var (
	severityColors = map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevHint:    color.New(color.FgHiBlack),
	}
	codeColor = color.New(color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид. Идёт по
// bag.Items() (ожидается bag.Sort() заранее). Для каждой печатает
// <path>:<line>:<col>: <SEV> <CODE>: <message>
// затем строку текста с подчёркиванием ^~~~ по спану.
func Pretty(w io.Writer, path string, text *source.Text, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		writeHeader(w, path, text, d, opts)
		writeUnderline(w, text, d, opts)
	}
}

func writeHeader(w io.Writer, path string, text *source.Text, d diag.Diagnostic, opts PrettyOpts) {
	line, col := uint32(1), uint32(1)
	if text != nil {
		lc := text.LineColForByte(d.Primary.Start)
		line, col = lc.Line, lc.Col
	}
	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		if c, ok := severityColors[d.Severity]; ok {
			sev = c.Sprint(sev)
		}
		code = codeColor.Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, line, col, sev, code, d.Message)
}

// writeUnderline печатает строку источника и маркер под спаном.
// Ширина маркера считается в экранных колонках, иначе под CJK он
// съезжает. Спан на несколько строк подчёркивается до конца первой.
func writeUnderline(w io.Writer, text *source.Text, d diag.Diagnostic, opts PrettyOpts) {
	if text == nil {
		return
	}
	lc := text.LineColForByte(d.Primary.Start)
	span := text.LineSpan(int(lc.Line) - 1)
	lineText := text.Slice(span.Start, span.End)
	if lineText == "" {
		return
	}
	start := clampOffset(d.Primary.Start, span.Start, span.End)
	end := clampOffset(d.Primary.End, start, span.End)
	pad := runewidth.StringWidth(text.Slice(span.Start, start))
	width := runewidth.StringWidth(text.Slice(start, end))
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		if c, ok := severityColors[d.Severity]; ok {
			marker = c.Sprint(marker)
		}
	}
	fmt.Fprintf(w, "  %s\n  %s%s\n", lineText, strings.Repeat(" ", pad), marker)
}

func clampOffset(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
