package lsp

import (
	"encoding/json"
	"strings"

	"mozuku/internal/driver"
	"mozuku/internal/token"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params hoverParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	uri := canonicalURI(params.TextDocument.URI)
	s.mu.Lock()
	doc, okDoc := s.docs[uri]
	res, okRes := s.results[uri]
	s.mu.Unlock()
	if !okDoc || !okRes {
		return s.sendResponse(msg.ID, nil)
	}
	return s.sendResponse(msg.ID, s.buildHover(doc, res, params.Position))
}

func (s *Server) buildHover(doc *document, res driver.AnalysisResult, pos position) *hover {
	// Outside comments and prose there are no morphemes to describe.
	if doc.languageID != "japanese" && !insideHighlights(res, pos) {
		return nil
	}

	tok, ok := tokenAtPosition(res.Tokens, pos)
	if !ok {
		return nil
	}

	lines := []string{
		"**" + tok.Surface + "**",
		"```",
		tok.Feature.CSV(),
		"```",
	}
	if v := tok.Feature.Base; v != "" && v != token.Absent {
		lines = append(lines, "**原形**: "+v)
	}
	if v := tok.Feature.Reading; v != "" && v != token.Absent {
		lines = append(lines, "**読み**: "+v)
	}
	if v := tok.Feature.Pron; v != "" && v != token.Absent {
		lines = append(lines, "**発音**: "+v)
	}

	if isNoun(tok) && s.summaries != nil {
		query := tok.Feature.Base
		if query == "" || query == token.Absent {
			query = tok.Surface
		}
		if entry, ok := s.summaries.Lookup(query); ok {
			lines = append(lines, "", "---", "**Wikipedia**: "+entry.Content)
		} else {
			// The summary will be there for the next hover.
			s.summaries.Prefetch(query)
		}
	}

	hoverRange := lspRange{
		Start: wirePosition(tok.Start),
		End:   wirePosition(tok.End),
	}
	return &hover{
		Contents: markupContent{
			Kind:  "markdown",
			Value: strings.Join(lines, "\n"),
		},
		Range: &hoverRange,
	}
}

func insideHighlights(res driver.AnalysisResult, pos position) bool {
	if res.Text == nil {
		return false
	}
	off := res.Text.ByteForPosition(sourcePosition(pos))
	for _, seg := range res.Comments {
		if seg.Span.Contains(off) {
			return true
		}
	}
	for _, span := range res.Contents {
		if span.Contains(off) {
			return true
		}
	}
	return false
}

func tokenAtPosition(tokens []token.Token, pos position) (token.Token, bool) {
	for _, tok := range tokens {
		if int(tok.Start.Line) != pos.Line {
			continue
		}
		if int(tok.Start.Character) <= pos.Character && pos.Character < int(tok.End.Character) {
			return tok, true
		}
	}
	return token.Token{}, false
}

func isNoun(tok token.Token) bool {
	return tok.Kind == token.Noun || tok.Feature.POS == "名詞"
}
