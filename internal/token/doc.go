// Package token defines the morphological token model shared by the
// analyzer adapter, the grammar rules, and the LSP layer.
// Invariants:
//   - FeatureRecord always carries nine fields; absent fields hold "*".
//   - Token.Surface is the exact slice of the analyzed text; Token.Span
//     is its byte range and Start/End are derived from it once, at
//     construction. Consumers never recompute positions.
//   - Kind values follow the highlight legend order; the numeric value
//     IS the legend index.
//   - Modifier bits likewise match the legend: proper=1, numeric=2,
//     kana=4, kanji=8.
//   - Records are value types and never mutated after construction.
package token
