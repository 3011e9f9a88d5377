package extract

import (
	"context"
	"testing"

	"mozuku/internal/mask"
	"mozuku/internal/source"
)

func TestFromLanguageID(t *testing.T) {
	tests := []struct {
		id   string
		want Language
		ok   bool
	}{
		{"japanese", Japanese, true},
		{"python", Python, true},
		{"typescriptreact", TypeScriptReact, true},
		{"latex", LaTeX, true},
		{"ruby", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := FromLanguageID(tt.id)
			if got != tt.want || ok != tt.ok {
				t.Errorf("FromLanguageID(%q) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCommentStyle(t *testing.T) {
	tests := []struct {
		lang Language
		want mask.Style
	}{
		{Python, mask.StyleHash},
		{Go, mask.StyleSlash},
		{TypeScript, mask.StyleSlash},
		{LaTeX, mask.StylePercent},
		{TypeScriptReact, mask.StyleNone},
		{JavaScriptReact, mask.StyleNone},
		{HTML, mask.StyleNone},
		{CSS, mask.StyleNone},
		{Japanese, mask.StyleNone},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			if got := tt.lang.CommentStyle(); got != tt.want {
				t.Errorf("CommentStyle(%q) = %v, want %v", tt.lang, got, tt.want)
			}
		})
	}
}

func TestCommentSegmentsGo(t *testing.T) {
	text := "package main\n\n// greeting text\nfunc main() {}\n"
	segments := CommentSegments(context.Background(), Go, text)
	if len(segments) != 1 {
		t.Fatalf("CommentSegments() returned %d segments, want 1", len(segments))
	}
	seg := segments[0]
	want := source.Span{Start: 14, End: 30}
	if seg.Span != want {
		t.Errorf("segment span = %v, want %v", seg.Span, want)
	}
	if got := text[seg.Span.Start:seg.Span.End]; got != "// greeting text" {
		t.Errorf("segment text = %q, want %q", got, "// greeting text")
	}
	if seg.Sanitized != "   greeting text" {
		t.Errorf("sanitized = %q, want %q", seg.Sanitized, "   greeting text")
	}
}

func TestCommentSegmentsPython(t *testing.T) {
	text := "# 最初の行\nx = 1\n"
	segments := CommentSegments(context.Background(), Python, text)
	if len(segments) != 1 {
		t.Fatalf("CommentSegments() returned %d segments, want 1", len(segments))
	}
	seg := segments[0]
	if got := text[seg.Span.Start:seg.Span.End]; got != "# 最初の行" {
		t.Errorf("segment text = %q, want %q", got, "# 最初の行")
	}
	if seg.Sanitized != "  最初の行" {
		t.Errorf("sanitized = %q, want %q", seg.Sanitized, "  最初の行")
	}
}

func TestCommentSegmentsUnsupported(t *testing.T) {
	if got := CommentSegments(context.Background(), Japanese, "テキスト"); got != nil {
		t.Errorf("CommentSegments(japanese) = %v, want nil", got)
	}
	if got := CommentSegments(context.Background(), Language("ruby"), "# x"); got != nil {
		t.Errorf("CommentSegments(ruby) = %v, want nil", got)
	}
}

func TestContentRangesHTML(t *testing.T) {
	text := "<p> こんにちは </p>"
	ranges := ContentRanges(context.Background(), HTML, text)
	if len(ranges) != 1 {
		t.Fatalf("ContentRanges() returned %d ranges, want 1", len(ranges))
	}
	if got := text[ranges[0].Start:ranges[0].End]; got != "こんにちは" {
		t.Errorf("range text = %q, want %q", got, "こんにちは")
	}
}

func TestContentRangesNonMarkup(t *testing.T) {
	if got := ContentRanges(context.Background(), Go, "// x"); got != nil {
		t.Errorf("ContentRanges(go) = %v, want nil", got)
	}
	if got := ContentRanges(context.Background(), Japanese, "テキスト"); got != nil {
		t.Errorf("ContentRanges(japanese) = %v, want nil", got)
	}
}

func TestLatexComments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []mask.CommentSegment
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "no comment",
			text: "plain text\n",
			want: nil,
		},
		{
			name: "full line",
			text: "% note\ntext\n",
			want: []mask.CommentSegment{
				{Span: source.Span{Start: 0, End: 6}, Sanitized: "  note"},
			},
		},
		{
			name: "trailing comment without newline",
			text: "a \\% b % real",
			want: []mask.CommentSegment{
				{Span: source.Span{Start: 7, End: 13}, Sanitized: "  real"},
			},
		},
		{
			name: "double backslash does not escape",
			text: "\\\\% x\n",
			want: []mask.CommentSegment{
				{Span: source.Span{Start: 2, End: 5}, Sanitized: "  x"},
			},
		},
		{
			name: "one per line",
			text: "% a % b\ntext % c\n",
			want: []mask.CommentSegment{
				{Span: source.Span{Start: 0, End: 7}, Sanitized: "  a % b"},
				{Span: source.Span{Start: 13, End: 16}, Sanitized: "  c"},
			},
		},
		{
			name: "japanese comment",
			text: "本文 % 注記\n",
			want: []mask.CommentSegment{
				{Span: source.Span{Start: 7, End: 15}, Sanitized: "  注記"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := latexComments(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("latexComments() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLatexContentRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "command and braces",
			text: "\\section{Introduction} こんにちは world",
			want: []string{"Introduction", "こんにちは", "world"},
		},
		{
			name: "starred command",
			text: "\\section*{A}",
			want: []string{"A"},
		},
		{
			name: "inline math skipped",
			text: "a $x+y$ b",
			want: []string{"a", "b"},
		},
		{
			name: "display math skipped",
			text: "x $$e=mc^2$$ y",
			want: []string{"x", "y"},
		},
		{
			name: "unterminated math aborts",
			text: "a $x never closed",
			want: []string{"a"},
		},
		{
			name: "comment skipped",
			text: "text % comment\nmore",
			want: []string{"text", "more"},
		},
		{
			name: "trailing comment aborts",
			text: "text % comment",
			want: []string{"text"},
		},
		{
			name: "escaped percent stays content",
			text: "50\\% off",
			want: []string{"50", "off"},
		},
		{
			name: "ascii punctuation splits runs",
			text: "don't stop",
			want: []string{"don", "t", "stop"},
		},
		{
			name: "japanese punctuation does not split",
			text: "これは文。次の文",
			want: []string{"これは文。次の文"},
		},
		{
			name: "ideographic space splits",
			text: "前半　後半",
			want: []string{"前半", "後半"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := latexContentRanges(tt.text)
			var got []string
			for _, r := range ranges {
				got = append(got, tt.text[r.Start:r.End])
			}
			if len(got) != len(tt.want) {
				t.Fatalf("latexContentRanges() runs = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("run[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLatexContentRangeOffsets(t *testing.T) {
	text := "\\title{表題} 本文"
	ranges := latexContentRanges(text)
	want := []source.Span{
		{Start: 7, End: 13},
		{Start: 15, End: 21},
	}
	if len(ranges) != len(want) {
		t.Fatalf("latexContentRanges() = %+v, want %+v", ranges, want)
	}
	for i := range ranges {
		if ranges[i] != want[i] {
			t.Errorf("range[%d] = %v, want %v", i, ranges[i], want[i])
		}
	}
}
