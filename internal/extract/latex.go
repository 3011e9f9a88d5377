package extract

import (
	"unicode"

	"mozuku/internal/mask"
	"mozuku/internal/source"
)

// runeText pairs the runes of a string with their byte offsets, so the
// scanners can think in characters and still report byte spans.
type runeText struct {
	runes []rune
	offs  []uint32
}

func newRuneText(s string) runeText {
	runes := []rune(s)
	offs := make([]uint32, len(runes)+1)
	var off uint32
	for i, r := range runes {
		offs[i] = off
		off += uint32(len(string(r)))
	}
	offs[len(runes)] = off
	return runeText{runes: runes, offs: offs}
}

func (t runeText) len() int { return len(t.runes) }

// isEscaped reports whether the rune at pos sits behind an odd number
// of backslashes.
func (t runeText) isEscaped(pos int) bool {
	count := 0
	for pos > count && t.runes[pos-count-1] == '\\' {
		count++
	}
	return count%2 == 1
}

// findNewline returns the index of the next '\n' at or after pos, or -1.
func (t runeText) findNewline(pos int) int {
	for i := pos; i < len(t.runes); i++ {
		if t.runes[i] == '\n' {
			return i
		}
	}
	return -1
}

// latexComments scans for unescaped '%' per line; the comment runs to
// the end of its line.
func latexComments(text string) []mask.CommentSegment {
	t := newRuneText(text)
	var segments []mask.CommentSegment
	pos := 0

	for pos < t.len() {
		lineEnd := t.findNewline(pos)
		if lineEnd == -1 {
			lineEnd = t.len()
		}

		for cur := pos; cur < lineEnd; cur++ {
			if t.runes[cur] == '%' && !t.isEscaped(cur) {
				segments = append(segments, mask.CommentSegment{
					Span:      source.Span{Start: t.offs[cur], End: t.offs[lineEnd]},
					Sanitized: mask.Sanitize(string(t.runes[cur:lineEnd]), mask.StylePercent),
				})
				break
			}
		}

		if lineEnd >= t.len() {
			break
		}
		pos = lineEnd + 1
	}

	return segments
}

// latexContentRanges returns the plain prose runs of a LaTeX document:
// everything that is not a comment, math, a command, braces,
// whitespace, or ASCII punctuation. A run ends at the first such
// boundary; unterminated math or a trailing unterminated comment
// aborts the scan.
func latexContentRanges(text string) []source.Span {
	t := newRuneText(text)
	var ranges []source.Span
	i := 0

	for i < t.len() {
		c := t.runes[i]

		if c == '%' && !t.isEscaped(i) {
			lineEnd := t.findNewline(i)
			if lineEnd == -1 {
				break
			}
			i = lineEnd + 1
			continue
		}

		if c == '$' && !t.isEscaped(i) {
			if i+1 < t.len() && t.runes[i+1] == '$' {
				closing := t.findClosingDoubleDollar(i + 2)
				if closing == -1 {
					break
				}
				i = closing + 2
			} else {
				closing := t.findClosingDollar(i + 1)
				if closing == -1 {
					break
				}
				i = closing + 1
			}
			continue
		}

		if c == '\\' {
			i++
			for i < t.len() && (unicode.IsLetter(t.runes[i]) || t.runes[i] == '@') {
				i++
			}
			if i < t.len() && t.runes[i] == '*' {
				i++
			}
			continue
		}

		if c == '{' || c == '}' {
			i++
			continue
		}

		if isSpaceRune(c) {
			i++
			continue
		}

		start := i
		advanced := false
		for i < t.len() {
			d := t.runes[i]
			if d == '\\' || d == '$' || d == '{' || d == '}' {
				break
			}
			if d == '%' && !t.isEscaped(i) {
				break
			}
			if isSpaceRune(d) || (d < 128 && !isASCIIAlnum(d)) {
				break
			}
			i++
			advanced = true
		}

		if advanced {
			ranges = append(ranges, source.Span{Start: t.offs[start], End: t.offs[i]})
		} else {
			i++
		}
	}

	return ranges
}

func (t runeText) findClosingDollar(pos int) int {
	for i := pos; i < t.len(); i++ {
		if t.runes[i] == '$' && !t.isEscaped(i) {
			return i
		}
	}
	return -1
}

func (t runeText) findClosingDoubleDollar(pos int) int {
	for i := pos; i < t.len()-1; i++ {
		if t.runes[i] == '$' && t.runes[i+1] == '$' && !t.isEscaped(i) {
			return i
		}
	}
	return -1
}

func isSpaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
