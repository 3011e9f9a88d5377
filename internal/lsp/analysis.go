package lsp

import (
	"context"
	"time"

	"mozuku/internal/driver"
	"mozuku/internal/extract"
)

// scheduleAnalysis (re)arms the debounce timer for one document. Every
// schedule bumps the document's sequence number; a run whose sequence
// is no longer current is discarded, so only the latest snapshot is
// ever published.
func (s *Server) scheduleAnalysis(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[uri]; !ok {
		return
	}
	s.seqs[uri]++
	seq := s.seqs[uri]
	if timer, ok := s.timers[uri]; ok {
		timer.Stop()
	}
	s.timers[uri] = time.AfterFunc(s.debounce, func() {
		s.runAnalysis(uri, seq)
	})
}

func (s *Server) runAnalysis(uri string, seq uint64) {
	s.mu.Lock()
	if s.seqs[uri] != seq {
		s.mu.Unlock()
		return
	}
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return
	}
	text := doc.text
	langID := doc.languageID
	version := doc.version
	cfg := s.cfg
	maxDiagnostics := s.maxDiagnostics
	s.mu.Unlock()

	ctx := s.baseCtx
	if ctx == nil {
		ctx = context.Background()
	}
	res := driver.AnalyzeDocument(ctx, s.analyzer, text, langID, cfg, maxDiagnostics)

	s.mu.Lock()
	if s.seqs[uri] != seq {
		// The document changed while we were analyzing; drop the stale result.
		s.mu.Unlock()
		return
	}
	s.results[uri] = res
	s.published[uri] = struct{}{}
	s.mu.Unlock()

	s.publishResult(uri, version, res)
}

func (s *Server) publishResult(uri string, version int, res driver.AnalysisResult) {
	var diags []lspDiagnostic
	if res.Bag != nil {
		diags = make([]lspDiagnostic, 0, res.Bag.Len())
		for _, d := range res.Bag.Items() {
			diags = append(diags, lspDiagnostic{
				Range:    rangeForSpan(res.Analysis, d.Primary),
				Severity: int(d.Severity),
				Code:     d.Code.Name(),
				Source:   "mozuku",
				Message:  d.Message,
			})
		}
	}
	if err := s.sendPublish(uri, version, diags); err != nil {
		s.log.Warn("failed to publish diagnostics", "err", err)
		return
	}

	s.sendCommentHighlights(uri, res)
	s.sendContentHighlights(uri, res)
	s.sendSemanticHighlights(uri, res)
}

// Highlight spans index the document text, not the analysis text, so
// positions here come from res.Text.
func (s *Server) sendCommentHighlights(uri string, res driver.AnalysisResult) {
	ranges := make([]lspRange, 0, len(res.Comments))
	for _, seg := range res.Comments {
		ranges = append(ranges, rangeForSpan(res.Text, seg.Span))
	}
	err := s.sendNotification("mozuku/commentHighlights", highlightRangesParams{URI: uri, Ranges: ranges})
	if err != nil {
		s.log.Warn("failed to send comment highlights", "err", err)
	}
}

func (s *Server) sendContentHighlights(uri string, res driver.AnalysisResult) {
	ranges := make([]lspRange, 0, len(res.Contents))
	for _, span := range res.Contents {
		ranges = append(ranges, rangeForSpan(res.Text, span))
	}
	err := s.sendNotification("mozuku/contentHighlights", highlightRangesParams{URI: uri, Ranges: ranges})
	if err != nil {
		s.log.Warn("failed to send content highlights", "err", err)
	}
}

// Japanese documents get their colors through the standard semantic
// tokens channel, so the custom notification carries an empty list for
// them. Everything else (masked code and unsupported passthrough) is
// painted through this channel.
func (s *Server) sendSemanticHighlights(uri string, res driver.AnalysisResult) {
	entries := make([]semanticTokenOutline, 0, len(res.Tokens))
	if !(res.Supported && res.Language == extract.Japanese) {
		for _, tok := range res.Tokens {
			entries = append(entries, semanticTokenOutline{
				Range: lspRange{
					Start: wirePosition(tok.Start),
					End:   wirePosition(tok.End),
				},
				Type:      tok.Kind.String(),
				Modifiers: int(tok.Modifiers),
			})
		}
	}
	err := s.sendNotification("mozuku/semanticHighlights", semanticHighlightsParams{URI: uri, Tokens: entries})
	if err != nil {
		s.log.Warn("failed to send semantic highlights", "err", err)
	}
}
