package diag

// Severity defines the importance of a diagnostic, using the LSP wire
// numbering: lower values are more severe.
type Severity uint8

const (
	// SevError is for findings that make the text wrong.
	SevError Severity = 1
	// SevWarning is for style findings; every grammar rule emits these.
	SevWarning Severity = 2
	// SevInfo is for informational diagnostics.
	SevInfo Severity = 3
	// SevHint is for faint editor hints.
	SevHint Severity = 4
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "ERROR"
	case SevWarning:
		return "WARNING"
	case SevInfo:
		return "INFO"
	case SevHint:
		return "HINT"
	}
	return "UNKNOWN"
}

// AtLeast reports whether s is at least as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s <= min
}
