package morph

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"mozuku/internal/source"
)

// Sentence is one segmented sentence of the analysis text. Spans are
// byte ranges into that text, trimmed of surrounding whitespace, and
// never overlap. ID is the zero-based rank in document order.
type Sentence struct {
	Span source.Span
	ID   int
	Text string
}

// SplitSentences segments text deterministically: a sentence ends
// after a run of terminators (。．！？!?), at a blank line, or at end
// of text. Candidates that trim to nothing are skipped.
func SplitSentences(text string) []Sentence {
	raw := []byte(text)
	var sentences []Sentence
	start := 0

	flush := func(end int) {
		s, e := trimRange(raw, start, end)
		if e > s {
			sentences = append(sentences, Sentence{
				Span: source.Span{Start: uint32(s), End: uint32(e)},
				ID:   len(sentences),
				Text: string(raw[s:e]),
			})
		}
		start = end
	}

	i := 0
	lineStart := 0
	lineBlank := true
	for i < len(raw) {
		r, size := utf8.DecodeRune(raw[i:])
		if r == '\n' {
			if lineBlank {
				flush(lineStart)
			}
			lineStart = i + size
			lineBlank = true
			i += size
			continue
		}
		if !unicode.IsSpace(r) {
			lineBlank = false
		}
		if isTerminator(r) {
			j := i + size
			for j < len(raw) {
				r2, size2 := utf8.DecodeRune(raw[j:])
				if !isTerminator(r2) {
					break
				}
				j += size2
			}
			flush(j)
			i = j
			continue
		}
		i += size
	}
	flush(len(raw))
	return sentences
}

func isTerminator(r rune) bool {
	switch r {
	case '。', '．', '！', '？', '!', '?':
		return true
	}
	return false
}

// trimRange shrinks [start, end) to exclude whitespace runes on both
// ends.
func trimRange(raw []byte, start, end int) (int, int) {
	for start < end {
		r, size := utf8.DecodeRune(raw[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRune(raw[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return start, end
}

// SentenceIndex answers "which sentence encloses this byte offset" in
// O(log n). Sentences must be the ordered output of SplitSentences.
type SentenceIndex struct {
	sentences []Sentence
}

// NewSentenceIndex builds an index over ordered sentences.
func NewSentenceIndex(sentences []Sentence) *SentenceIndex {
	return &SentenceIndex{sentences: sentences}
}

// Enclosing returns the sentence whose span contains off. Offsets in
// the gaps between sentences belong to no sentence.
func (idx *SentenceIndex) Enclosing(off uint32) (Sentence, bool) {
	if idx == nil || len(idx.sentences) == 0 {
		return Sentence{}, false
	}
	// Последнее предложение с началом не правее off.
	i := sort.Search(len(idx.sentences), func(i int) bool {
		return idx.sentences[i].Span.Start > off
	}) - 1
	if i < 0 {
		return Sentence{}, false
	}
	s := idx.sentences[i]
	if off >= s.Span.End {
		return Sentence{}, false
	}
	return s, true
}
