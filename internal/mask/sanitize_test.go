package mask

import (
	"testing"
	"unicode/utf8"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		style    Style
		expected string
	}{
		{
			name:     "hash marker and following whitespace",
			text:     "# これはコメント",
			style:    StyleHash,
			expected: "  これはコメント",
		},
		{
			name:     "hash run",
			text:     "##note",
			style:    StyleHash,
			expected: "  note",
		},
		{
			name:     "hash with tabs",
			text:     "#\t\tnote",
			style:    StyleHash,
			expected: "   note",
		},
		{
			name:     "line comment",
			text:     "// メモです",
			style:    StyleSlash,
			expected: "   メモです",
		},
		{
			name:     "line comment slash run",
			text:     "////divider",
			style:    StyleSlash,
			expected: "    divider",
		},
		{
			name:     "block comment single line",
			text:     "/* 説明 */",
			style:    StyleSlash,
			expected: "   説明   ",
		},
		{
			name:     "block comment leading star run",
			text:     "/** doc */",
			style:    StyleSlash,
			expected: "    doc   ",
		},
		{
			name:     "block comment trailing star run",
			text:     "/* x ***/",
			style:    StyleSlash,
			expected: "   x     ",
		},
		{
			name:     "empty block comment keeps final slash",
			text:     "/**/",
			style:    StyleSlash,
			expected: "   /",
		},
		{
			name:     "slash style leaves plain text alone",
			text:     "x // not at start",
			style:    StyleSlash,
			expected: "x // not at start",
		},
		{
			name:     "percent marker",
			text:     "% 注釈",
			style:    StylePercent,
			expected: "  注釈",
		},
		{
			name:     "percent run",
			text:     "%%% section",
			style:    StylePercent,
			expected: "    section",
		},
		{
			name:     "none style unchanged",
			text:     "<!-- html -->",
			style:    StyleNone,
			expected: "<!-- html -->",
		},
		{
			name:     "empty text",
			text:     "",
			style:    StyleHash,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.text, tt.style)
			if got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.text, got, tt.expected)
			}
			if utf8.RuneCountInString(got) != utf8.RuneCountInString(tt.text) {
				t.Errorf("Sanitize changed character count: %q -> %q", tt.text, got)
			}
		})
	}
}

// Sanitizing twice must equal sanitizing once.
func TestSanitizeIdempotent(t *testing.T) {
	cases := []struct {
		text  string
		style Style
	}{
		{"# コメント", StyleHash},
		{"## x", StyleHash},
		{"// line", StyleSlash},
		{"/* block */", StyleSlash},
		{"/** doc **/", StyleSlash},
		{"/**/", StyleSlash},
		{"% latex", StylePercent},
		{"plain", StyleNone},
	}
	for _, tt := range cases {
		once := Sanitize(tt.text, tt.style)
		twice := Sanitize(once, tt.style)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", tt.text, once, twice)
		}
	}
}
