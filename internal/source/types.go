package source

// TextFlags encodes normalization applied when a text was loaded from disk.
type TextFlags uint8 // метаданные

const (
	// TextHadBOM indicates a UTF-8 BOM was stripped on load.
	TextHadBOM TextFlags = 1 << iota
	// TextNormalizedCRLF indicates \r\n sequences were rewritten to \n on load.
	TextNormalizedCRLF
)

// Text is an immutable snapshot of one document. All offsets are byte
// offsets into Content; LineIdx holds the byte offset of every '\n'.
// Texts that arrive over the wire are never normalized: the editor's
// bytes are authoritative.
type Text struct {
	Content []byte
	LineIdx []uint32
	Flags   TextFlags
}

// Position is a zero-based location in a Text. Character counts UTF-16
// code units, matching the LSP wire encoding: runes above U+FFFF count
// as two units, every invalid byte counts as one.
type Position struct {
	Line      uint32
	Character uint32
}

// LineCol represents a human-readable position in a text.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
