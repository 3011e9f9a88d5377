package token

import (
	"mozuku/internal/source"
)

// Token represents a single morpheme with its location and features.
type Token struct {
	Surface   string
	Feature   FeatureRecord
	Span      source.Span
	Start     source.Position
	End       source.Position
	Kind      Kind
	Modifiers ModifierSet
}

// Line returns the zero-based line the token starts on.
func (t Token) Line() uint32 { return t.Start.Line }
