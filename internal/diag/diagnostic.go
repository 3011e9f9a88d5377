package diag

import (
	"mozuku/internal/source"
)

// Diagnostic is one finding against a text. Diagnostics are transient:
// every analysis pass rebuilds them from scratch and nothing persists
// them across edits.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}
