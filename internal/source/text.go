package source

import (
	"fmt"
	"os"
	"sort"
	"unicode/utf8"
)

// NewText wraps content as-is, without normalization.
func NewText(content []byte) *Text {
	return &Text{
		Content: content,
		LineIdx: buildLineIndex(content),
	}
}

// FromString is NewText for string input.
func FromString(s string) *Text {
	return NewText([]byte(s))
}

// Load reads a file from disk. Disk texts get the same cleanup the
// editor applies before sending a buffer: BOM stripped, \r\n folded to
// \n. Wire texts must go through NewText instead.
func Load(path string) (*Text, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var flags TextFlags
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= TextHadBOM
	}
	content, changed := normalizeCRLF(content)
	if changed {
		flags |= TextNormalizedCRLF
	}

	t := NewText(content)
	t.Flags = flags
	return t, nil
}

// Len returns the content length in bytes.
func (t *Text) Len() uint32 {
	return safeUint32(len(t.Content))
}

// LineCount returns the number of lines; an empty text has one line.
func (t *Text) LineCount() int {
	return len(t.LineIdx) + 1
}

// Snap clamps off to the content length and moves it down to the
// nearest rune start, so a caller can never address the middle of a
// multi-byte sequence.
func (t *Text) Snap(off uint32) uint32 {
	if n := t.Len(); off > n {
		off = n
	}
	for off > 0 && off < t.Len() && t.Content[off]&0xC0 == 0x80 {
		off--
	}
	return off
}

// lineStart возвращает байтовый офсет начала строки line (0-based).
func (t *Text) lineStart(line int) uint32 {
	if line <= 0 {
		return 0
	}
	if line > len(t.LineIdx) {
		return t.Len()
	}
	return t.LineIdx[line-1] + 1
}

// lineEnd возвращает офсет завершающего \n строки, либо конец текста.
func (t *Text) lineEnd(line int) uint32 {
	if line < 0 {
		return 0
	}
	if line < len(t.LineIdx) {
		return t.LineIdx[line]
	}
	return t.Len()
}

// PositionForByte converts a byte offset to a Position. Offsets past
// the end clamp to the final position; offsets inside a multi-byte
// rune snap down to its start.
func (t *Text) PositionForByte(off uint32) Position {
	off = t.Snap(off)
	lineIdx := t.LineIdx
	idx := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	var lineStart uint32
	if idx > 0 {
		lineStart = lineIdx[idx-1] + 1
	}
	if lineStart > off {
		lineStart = off
	}
	units := 0
	for cur := lineStart; cur < off; {
		r, size := utf8.DecodeRune(t.Content[cur:off])
		if cur+safeUint32(size) > off {
			break
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		cur += safeUint32(size)
	}
	return Position{Line: safeUint32(idx), Character: safeUint32(units)}
}

// ByteForPosition converts a Position back to a byte offset. Lines past
// the end clamp to the content length; characters past the end of the
// line clamp to the line end. A character landing inside a surrogate
// pair resolves to the start of that rune.
func (t *Text) ByteForPosition(pos Position) uint32 {
	if len(t.Content) == 0 {
		return 0
	}
	line := int(pos.Line)
	if line >= t.LineCount() {
		return t.Len()
	}
	lineStart := t.lineStart(line)
	lineEnd := t.lineEnd(line)
	if lineStart > lineEnd {
		return lineEnd
	}
	target := int(pos.Character)
	units := 0
	off := lineStart
	for off < lineEnd {
		r, size := utf8.DecodeRune(t.Content[off:lineEnd])
		need := 1
		if r > 0xFFFF {
			need = 2
		}
		if units+need > target {
			break
		}
		units += need
		off += safeUint32(size)
		if units == target {
			break
		}
	}
	return off
}

// CharForByte returns the number of characters before off. Invalid
// bytes count one character each.
func (t *Text) CharForByte(off uint32) int {
	off = t.Snap(off)
	return utf8.RuneCount(t.Content[:off])
}

// ByteForChar returns the byte offset after the first chars characters.
func (t *Text) ByteForChar(chars int) uint32 {
	var off uint32
	n := t.Len()
	for chars > 0 && off < n {
		_, size := utf8.DecodeRune(t.Content[off:])
		off += safeUint32(size)
		chars--
	}
	return off
}

// LineColForByte returns the 1-based line/column of a byte offset,
// counting columns in characters. CLI rendering only; LSP positions go
// through PositionForByte.
func (t *Text) LineColForByte(off uint32) LineCol {
	off = t.Snap(off)
	lineIdx := t.LineIdx
	// бинпоиск: первая строка, у которой \n не раньше off
	idx := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	var start uint32
	if idx > 0 {
		start = lineIdx[idx-1] + 1
	}
	if start > off {
		start = off
	}
	col := utf8.RuneCount(t.Content[start:off])
	return LineCol{Line: safeUint32(idx) + 1, Col: safeUint32(col) + 1}
}

// LineSpan returns the byte span of a 0-based line, newline excluded.
func (t *Text) LineSpan(line int) Span {
	if line < 0 {
		return Span{}
	}
	if line >= t.LineCount() {
		n := t.Len()
		return Span{Start: n, End: n}
	}
	return Span{Start: t.lineStart(line), End: t.lineEnd(line)}
}

// String returns the content as a string.
func (t *Text) String() string {
	return string(t.Content)
}

// Slice returns the content between two byte offsets, clamped.
func (t *Text) Slice(start, end uint32) string {
	start = t.Snap(start)
	end = t.Snap(end)
	if start > end {
		return ""
	}
	return string(t.Content[start:end])
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	units := 0
	for _, r := range s {
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return units
}
