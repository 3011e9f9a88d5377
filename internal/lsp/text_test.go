package lsp

import "testing"

func TestApplyChangesFullReplace(t *testing.T) {
	got := applyChanges("old text", []textDocumentContentChangeEvent{{Text: "new text"}})
	if got != "new text" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestApplyChangesIncremental(t *testing.T) {
	text := "one\ntwo\n"
	text = applyChanges(text, []textDocumentContentChangeEvent{{
		Range: &lspRange{Start: position{Line: 0, Character: 0}, End: position{Line: 0, Character: 0}},
		Text:  "// ",
	}})
	if text != "// one\ntwo\n" {
		t.Fatalf("after insert: %q", text)
	}
	text = applyChanges(text, []textDocumentContentChangeEvent{{
		Range: &lspRange{Start: position{Line: 1, Character: 0}, End: position{Line: 1, Character: 3}},
		Text:  "three",
	}})
	if text != "// one\nthree\n" {
		t.Fatalf("after replace: %q", text)
	}
}

func TestApplyChangesMultiByte(t *testing.T) {
	text := "日本語です\n"
	text = applyChanges(text, []textDocumentContentChangeEvent{{
		Range: &lspRange{Start: position{Line: 0, Character: 3}, End: position{Line: 0, Character: 3}},
		Text:  "、",
	}})
	if text != "日本語、です\n" {
		t.Fatalf("after insert: %q", text)
	}
	text = applyChanges(text, []textDocumentContentChangeEvent{{
		Range: &lspRange{Start: position{Line: 0, Character: 4}, End: position{Line: 0, Character: 6}},
		Text:  "",
	}})
	if text != "日本語、\n" {
		t.Fatalf("after delete: %q", text)
	}
}

// Columns count UTF-16 code units, so a character outside the BMP
// occupies two of them.
func TestApplyChangesSurrogatePair(t *testing.T) {
	got := applyChanges("a𝄞b", []textDocumentContentChangeEvent{{
		Range: &lspRange{Start: position{Line: 0, Character: 3}, End: position{Line: 0, Character: 3}},
		Text:  "!",
	}})
	if got != "a𝄞!b" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestOffsetForPositionClamps(t *testing.T) {
	text := "ab\ncd"
	if got := offsetForPosition(text, position{Line: 5, Character: 0}); got != len(text) {
		t.Fatalf("line past end: got %d", got)
	}
	if got := offsetForPosition(text, position{Line: 0, Character: 99}); got != 2 {
		t.Fatalf("column past newline: got %d", got)
	}
	if got := offsetForPosition(text, position{Line: -1, Character: 0}); got != 0 {
		t.Fatalf("negative line: got %d", got)
	}
	if got := offsetForPosition(text, position{Line: 1, Character: 1}); got != 4 {
		t.Fatalf("second line: got %d", got)
	}
}
