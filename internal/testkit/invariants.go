// Package testkit provides invariant checks shared by tests across
// packages.
package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"mozuku/internal/morph"
	"mozuku/internal/token"
)

// CheckTokenInvariants runs a minimal set of span invariants on a
// token stream:
// 1) every span is non-empty and within text bounds
// 2) spans are ordered and do not overlap
// 3) for valid UTF-8 text, every span slices out the token surface
func CheckTokenInvariants(tokens []token.Token, text string) error {
	size, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("text length overflow: %w", err)
	}
	valid := utf8.ValidString(text)
	var prevEnd uint32
	for i, tok := range tokens {
		if tok.Span.End <= tok.Span.Start {
			return fmt.Errorf("token %d span is empty: %v", i, tok.Span)
		}
		if tok.Span.End > size {
			return fmt.Errorf("token %d span beyond text: %v > %d", i, tok.Span, size)
		}
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %d overlaps previous end %d: %v", i, prevEnd, tok.Span)
		}
		if valid && text[tok.Span.Start:tok.Span.End] != tok.Surface {
			return fmt.Errorf("token %d span does not slice its surface %q", i, tok.Surface)
		}
		prevEnd = tok.Span.End
	}
	return nil
}

// CheckSentenceInvariants runs the corresponding invariants on
// segmented sentences, including consecutive IDs.
func CheckSentenceInvariants(sentences []morph.Sentence, text string) error {
	size, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("text length overflow: %w", err)
	}
	var prevEnd uint32
	for i, s := range sentences {
		if s.ID != i {
			return fmt.Errorf("sentence %d has ID %d", i, s.ID)
		}
		if s.Span.End <= s.Span.Start {
			return fmt.Errorf("sentence %d span is empty: %v", i, s.Span)
		}
		if s.Span.End > size {
			return fmt.Errorf("sentence %d span beyond text: %v > %d", i, s.Span, size)
		}
		if s.Span.Start < prevEnd {
			return fmt.Errorf("sentence %d overlaps previous end %d: %v", i, prevEnd, s.Span)
		}
		if s.Text != text[s.Span.Start:s.Span.End] {
			return fmt.Errorf("sentence %d text does not match its span", i)
		}
		prevEnd = s.Span.End
	}
	return nil
}
