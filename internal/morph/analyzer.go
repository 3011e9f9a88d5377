// Package morph adapts the morphological analyzer to the token model.
// The analyzer is a collaborator, not a dependency of the rule logic:
// a missing or failed analyzer degrades to empty token and sentence
// streams, never to an error.
package morph

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"mozuku/internal/source"
	"mozuku/internal/token"
)

// Analyzer produces tokens and sentence boundaries for analysis text.
type Analyzer interface {
	Analyze(text string) []token.Token
	Sentences(text string) []Sentence
}

// Kagome is the IPA-dictionary analyzer.
type Kagome struct {
	tok *tokenizer.Tokenizer
}

// NewKagome builds the analyzer. Dictionary data is embedded, so this
// only fails on tokenizer construction itself.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	return &Kagome{tok: t}, nil
}

// Analyze tokenizes text and lifts each morpheme into a token with
// byte span, editor positions, kind and modifiers. Whitespace
// morphemes are dropped.
func (k *Kagome) Analyze(text string) []token.Token {
	if k == nil || k.tok == nil || text == "" {
		return nil
	}

	txt := source.FromString(text)
	offs := runeOffsets(text)

	morphemes := k.tok.Tokenize(text)
	tokens := make([]token.Token, 0, len(morphemes))
	for _, m := range morphemes {
		if strings.TrimSpace(m.Surface) == "" {
			continue
		}
		// Анализатор считает в рунах, спаны у нас в байтах.
		if m.Start < 0 || m.End <= m.Start || m.End >= len(offs) {
			continue
		}
		span := source.Span{Start: offs[m.Start], End: offs[m.End]}

		rec := token.ParseFeatures(m.Features())
		start, end := tokenPositions(txt, span, m.Surface)
		tokens = append(tokens, token.Token{
			Surface:   m.Surface,
			Feature:   rec,
			Span:      span,
			Start:     start,
			End:       end,
			Kind:      token.ClassifyKind(rec),
			Modifiers: token.ClassifyModifiers(rec, m.Surface),
		})
	}
	return tokens
}

// Sentences segments text for the sentence-scoped rules.
func (k *Kagome) Sentences(text string) []Sentence {
	if k == nil || k.tok == nil {
		return nil
	}
	return SplitSentences(text)
}

// tokenPositions derives editor positions for a token span. A token
// must not span lines; if the analyzer hands one back anyway, the end
// stays on the start line at start plus the surface width.
func tokenPositions(txt *source.Text, span source.Span, surface string) (start, end source.Position) {
	start = txt.PositionForByte(span.Start)
	end = txt.PositionForByte(span.End)
	if end.Line != start.Line {
		end = source.Position{
			Line:      start.Line,
			Character: start.Character + uint32(source.UTF16Len(surface)),
		}
	}
	return start, end
}

// runeOffsets returns the byte offset of every rune plus one final
// entry for the end of text.
func runeOffsets(s string) []uint32 {
	offs := make([]uint32, 0, len(s)+1)
	for i := range s {
		offs = append(offs, uint32(i))
	}
	return append(offs, uint32(len(s)))
}
