// Package diag defines the diagnostic model shared by the grammar
// rules, the driver, and the rendering layers.
//
// Diagnostic is the central record: Severity (LSP numbering, lower is
// more severe), Code (stable rule identifier, see codes.go), Message
// (Japanese, human oriented), and the Primary byte span into the
// analyzed text.
//
// Bag aggregates diagnostics with a hard cap, supports sorting,
// filtering and deduplication. Producers append; consumers sort once
// and render. The package performs no formatting or IO: rendering
// lives in internal/diagfmt and in the LSP layer.
package diag
