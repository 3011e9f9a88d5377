package diagfmt

import (
	"encoding/json"
	"io"

	"mozuku/internal/diag"
	"mozuku/internal/source"
)

// LocationJSON представляет местоположение в тексте анализа.
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Rule     string       `json:"rule"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FileJSON представляет результат проверки одного файла.
type FileJSON struct {
	Path        string           `json:"path"`
	Language    string           `json:"language"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// CheckJSON представляет корневую структуру JSON вывода.
type CheckJSON struct {
	Files []FileJSON `json:"files"`
	Count int        `json:"count"`
}

// makeLocation создаёт LocationJSON из Span.
func makeLocation(span source.Span, text *source.Text, includePositions bool) LocationJSON {
	loc := LocationJSON{
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions && text != nil {
		start := text.LineColForByte(span.Start)
		end := text.LineColForByte(span.End)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildFileOutput формирует JSON-представление одного файла без
// сериализации.
func BuildFileOutput(path, language string, text *source.Text, bag *diag.Bag, opts JSONOpts) FileJSON {
	out := FileJSON{
		Path:        path,
		Language:    language,
		Diagnostics: []DiagnosticJSON{},
	}
	if bag == nil {
		return out
	}
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	for i := range maxItems {
		d := items[i]
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Rule:     d.Code.Name(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, text, opts.IncludePositions),
		})
	}
	out.Count = len(out.Diagnostics)
	return out
}

// WriteCheckJSON сериализует отчёт по файлам с отступами.
func WriteCheckJSON(w io.Writer, files []FileJSON) error {
	if files == nil {
		files = []FileJSON{}
	}
	total := 0
	for _, f := range files {
		total += f.Count
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(CheckJSON{Files: files, Count: total})
}
