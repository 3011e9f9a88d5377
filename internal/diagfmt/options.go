// Package diagfmt renders analysis results for the CLI: diagnostics
// as annotated source lines or JSON, token dumps in both forms.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	Max              int  // обрезка вывода, не Bag
}
