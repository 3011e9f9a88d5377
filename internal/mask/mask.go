// Package mask produces the analysis text: a same-length copy of a
// document where everything outside the preserved segments is
// whitespace. Length is measured in characters; newlines always pass
// through so line numbers survive masking.
package mask

import (
	"unicode/utf8"

	"mozuku/internal/source"
)

// CommentSegment is one extracted comment: its byte range in the
// original text plus the sanitized text to substitute. The sanitized
// text has exactly as many characters as the range it replaces.
type CommentSegment struct {
	Span      source.Span
	Sanitized string
}

// Except masks text down to the given segments. Every character
// becomes a space unless it is a newline, falls inside a comment
// segment (the sanitized text is substituted character for character)
// or inside a content range (the original text is kept). With no
// segments at all the result is the all-whitespace transform.
func Except(text string, comments []CommentSegment, contents []source.Span) string {
	masked := []rune(text)
	for i, r := range masked {
		if r != '\n' && r != '\r' {
			masked[i] = ' '
		}
	}

	if len(comments) == 0 && len(contents) == 0 {
		return string(masked)
	}

	raw := []byte(text)
	orig := []rune(text)

	for _, seg := range comments {
		start := charOffset(raw, seg.Span.Start)
		for j, c := range []rune(seg.Sanitized) {
			if start+j < len(masked) {
				masked[start+j] = c
			}
		}
	}

	for _, span := range contents {
		start := charOffset(raw, span.Start)
		end := charOffset(raw, span.End)
		if end > len(masked) {
			end = len(masked)
		}
		for j := start; j < end; j++ {
			masked[j] = orig[j]
		}
	}

	return string(masked)
}

// charOffset converts a byte offset into a character offset by
// decoding the prefix. Invalid bytes count one character each.
func charOffset(raw []byte, byteOff uint32) int {
	if int(byteOff) > len(raw) {
		byteOff = uint32(len(raw))
	}
	return utf8.RuneCount(raw[:byteOff])
}
