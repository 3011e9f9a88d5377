package source

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

// nextBoundary steps to the following rune boundary, for walking all
// valid offsets in round-trip tests.
func (t *Text) nextBoundary(off uint32) uint32 {
	if off >= t.Len() {
		return t.Len()
	}
	_, size := utf8.DecodeRune(t.Content[off:])
	return off + uint32(size)
}

func TestPositionForByte(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		off      uint32
		expected Position
	}{
		{
			name:     "start of text",
			content:  "hello\nworld",
			off:      0,
			expected: Position{Line: 0, Character: 0},
		},
		{
			name:     "newline belongs to its line",
			content:  "hello\nworld",
			off:      5,
			expected: Position{Line: 0, Character: 5},
		},
		{
			name:     "first byte after newline",
			content:  "hello\nworld",
			off:      6,
			expected: Position{Line: 1, Character: 0},
		},
		{
			name:     "japanese runes count one utf16 unit",
			content:  "日本語\nです",
			off:      9,
			expected: Position{Line: 0, Character: 3},
		},
		{
			name:     "second line japanese",
			content:  "日本語\nです",
			off:      13,
			expected: Position{Line: 1, Character: 1},
		},
		{
			name:     "offset inside multi-byte rune snaps to rune start",
			content:  "日本語",
			off:      4,
			expected: Position{Line: 0, Character: 1},
		},
		{
			name:     "astral rune counts two units",
			content:  "a\U00020B9Fb",
			off:      5,
			expected: Position{Line: 0, Character: 3},
		},
		{
			name:     "offset past end clamps",
			content:  "abc",
			off:      100,
			expected: Position{Line: 0, Character: 3},
		},
		{
			name:     "empty text",
			content:  "",
			off:      0,
			expected: Position{Line: 0, Character: 0},
		},
		{
			name:     "offset on empty last line",
			content:  "abc\n",
			off:      4,
			expected: Position{Line: 1, Character: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := FromString(tt.content)
			if got := text.PositionForByte(tt.off); got != tt.expected {
				t.Errorf("PositionForByte(%d) = %+v, want %+v", tt.off, got, tt.expected)
			}
		})
	}
}

func TestByteForPosition(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		pos      Position
		expected uint32
	}{
		{
			name:     "origin",
			content:  "hello\nworld",
			pos:      Position{Line: 0, Character: 0},
			expected: 0,
		},
		{
			name:     "second line",
			content:  "hello\nworld",
			pos:      Position{Line: 1, Character: 3},
			expected: 9,
		},
		{
			name:     "character past end of line clamps to line end",
			content:  "ab\ncd",
			pos:      Position{Line: 0, Character: 99},
			expected: 2,
		},
		{
			name:     "line past end clamps to content length",
			content:  "ab\ncd",
			pos:      Position{Line: 9, Character: 0},
			expected: 5,
		},
		{
			name:     "japanese character units",
			content:  "日本語\nです",
			pos:      Position{Line: 0, Character: 2},
			expected: 6,
		},
		{
			name:     "character inside surrogate pair resolves to rune start",
			content:  "a\U00020B9Fb",
			pos:      Position{Line: 0, Character: 2},
			expected: 1,
		},
		{
			name:     "character after surrogate pair",
			content:  "a\U00020B9Fb",
			pos:      Position{Line: 0, Character: 3},
			expected: 5,
		},
		{
			name:     "empty text",
			content:  "",
			pos:      Position{Line: 0, Character: 5},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := FromString(tt.content)
			if got := text.ByteForPosition(tt.pos); got != tt.expected {
				t.Errorf("ByteForPosition(%+v) = %d, want %d", tt.pos, got, tt.expected)
			}
		})
	}
}

// Round trip: every rune boundary must survive byte -> position -> byte.
func TestPositionRoundTrip(t *testing.T) {
	contents := []string{
		"hello\nworld\n",
		"一文に、読点が、多すぎる。\n次の行です。",
		"mixed 日本語 and ascii\n\ntail",
		"a\U00020B9F語b\ncd",
	}
	for _, content := range contents {
		text := FromString(content)
		for off := uint32(0); off <= text.Len(); off = text.nextBoundary(off) {
			pos := text.PositionForByte(off)
			back := text.ByteForPosition(pos)
			if back != off {
				t.Fatalf("round trip failed in %q: off %d -> %+v -> %d", content, off, pos, back)
			}
			if off == text.Len() {
				break
			}
		}
	}
}

func TestCharByteRoundTrip(t *testing.T) {
	text := FromString("abc日本語def")
	for chars := 0; chars <= 9; chars++ {
		off := text.ByteForChar(chars)
		back := text.CharForByte(off)
		if back != chars {
			t.Fatalf("char round trip failed: %d -> %d -> %d", chars, off, back)
		}
	}
	if got := text.ByteForChar(100); got != text.Len() {
		t.Errorf("ByteForChar(100) = %d, want %d", got, text.Len())
	}
}

func TestInvalidBytesCountOneUnitEach(t *testing.T) {
	text := NewText([]byte{0xFF, 0xFE, 'a'})
	got := text.PositionForByte(3)
	want := Position{Line: 0, Character: 3}
	if got != want {
		t.Errorf("PositionForByte(3) = %+v, want %+v", got, want)
	}
	if chars := text.CharForByte(2); chars != 2 {
		t.Errorf("CharForByte(2) = %d, want 2", chars)
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 3},
		{"\U00020B9F", 2},
		{"a\U00020B9Fb", 4},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.s); got != tt.expected {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestLineColForByte(t *testing.T) {
	text := FromString("日本語\nです\n")
	tests := []struct {
		off      uint32
		expected LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{3, LineCol{Line: 1, Col: 2}},
		{9, LineCol{Line: 1, Col: 4}},
		{10, LineCol{Line: 2, Col: 1}},
		{13, LineCol{Line: 2, Col: 2}},
		{17, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		if got := text.LineColForByte(tt.off); got != tt.expected {
			t.Errorf("LineColForByte(%d) = %+v, want %+v", tt.off, got, tt.expected)
		}
	}
}

func TestLineSpan(t *testing.T) {
	text := FromString("日本語\nです\n")
	tests := []struct {
		line     int
		expected Span
	}{
		{0, Span{Start: 0, End: 9}},
		{1, Span{Start: 10, End: 16}},
		{2, Span{Start: 17, End: 17}},
		{-1, Span{}},
		{9, Span{Start: 17, End: 17}},
	}
	for _, tt := range tests {
		if got := text.LineSpan(tt.line); got != tt.expected {
			t.Errorf("LineSpan(%d) = %+v, want %+v", tt.line, got, tt.expected)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "doc.txt")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("one\r\ntwo\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	text, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(text.Content) != "one\ntwo\n" {
		t.Errorf("Load content = %q, want %q", text.Content, "one\ntwo\n")
	}
	if text.Flags&TextHadBOM == 0 {
		t.Errorf("TextHadBOM flag not set")
	}
	if text.Flags&TextNormalizedCRLF == 0 {
		t.Errorf("TextNormalizedCRLF flag not set")
	}
	if len(text.LineIdx) != 2 {
		t.Errorf("LineIdx length = %d, want 2", len(text.LineIdx))
	}
}

func TestSnap(t *testing.T) {
	text := FromString("日本")
	tests := []struct {
		off      uint32
		expected uint32
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 3},
		{4, 3},
		{6, 6},
		{99, 6},
	}
	for _, tt := range tests {
		if got := text.Snap(tt.off); got != tt.expected {
			t.Errorf("Snap(%d) = %d, want %d", tt.off, got, tt.expected)
		}
	}
}
