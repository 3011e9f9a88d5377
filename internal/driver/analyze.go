// Package driver runs the analysis pipeline over document snapshots:
// prepare the analysis text for the document's language, tokenize it,
// apply the grammar rules, sort the findings. The LSP server and the
// CLI both sit on top of this package.
package driver

import (
	"context"

	"mozuku/internal/diag"
	"mozuku/internal/extract"
	"mozuku/internal/grammar"
	"mozuku/internal/mask"
	"mozuku/internal/morph"
	"mozuku/internal/source"
	"mozuku/internal/token"
)

// DefaultMaxDiagnostics caps a document bag when the caller passes no
// limit of its own.
const DefaultMaxDiagnostics = 256

// Prepared holds the masking outcome for one document: what language
// it was read as and the text the analyzer should see.
type Prepared struct {
	Language     extract.Language
	Supported    bool
	AnalysisText string
	Comments     []mask.CommentSegment
	Contents     []source.Span
}

// Prepare builds the analysis text for one document. Japanese text
// passes through whole. Markup keeps comments and prose content, code
// keeps comments only, and everything else is masked out. Unsupported
// languages pass through unmasked.
func Prepare(ctx context.Context, langID, text string) Prepared {
	lang, supported := extract.FromLanguageID(langID)
	p := Prepared{Language: lang, Supported: supported, AnalysisText: text}
	if !supported || lang == extract.Japanese {
		return p
	}

	// Сломанный парс даёт пустые списки, и текст маскируется целиком.
	p.Comments = extract.CommentSegments(ctx, lang, text)
	p.Contents = extract.ContentRanges(ctx, lang, text)
	p.AnalysisText = mask.Except(text, p.Comments, p.Contents)
	return p
}

// Tokenize runs the analyzer over prepared text. A nil analyzer
// degrades to no tokens and no sentences.
func Tokenize(analyzer morph.Analyzer, analysisText string) ([]token.Token, []morph.Sentence) {
	if analyzer == nil {
		return nil, nil
	}
	return analyzer.Analyze(analysisText), analyzer.Sentences(analysisText)
}

// AnalysisResult is everything one pass over a document produced. All
// spans in Tokens, Sentences and Bag are byte offsets into Analysis,
// which has the same character and line layout as Text but not
// necessarily the same byte layout.
type AnalysisResult struct {
	Text      *source.Text
	Analysis  *source.Text
	Language  extract.Language
	Supported bool
	Tokens    []token.Token
	Sentences []morph.Sentence
	Comments  []mask.CommentSegment
	Contents  []source.Span
	Bag       *diag.Bag
}

// AnalyzeDocument runs the full pipeline over one document snapshot.
func AnalyzeDocument(ctx context.Context, analyzer morph.Analyzer, text, langID string, cfg grammar.Config, maxDiagnostics int) AnalysisResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}

	p := Prepare(ctx, langID, text)
	tokens, sentences := Tokenize(analyzer, p.AnalysisText)

	bag := diag.NewBag(maxDiagnostics)
	grammar.Check(p.AnalysisText, tokens, sentences, cfg, bag)
	bag.Sort()

	return AnalysisResult{
		Text:      source.FromString(text),
		Analysis:  source.FromString(p.AnalysisText),
		Language:  p.Language,
		Supported: p.Supported,
		Tokens:    tokens,
		Sentences: sentences,
		Comments:  p.Comments,
		Contents:  p.Contents,
		Bag:       bag,
	}
}
