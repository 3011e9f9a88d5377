package lsp

import (
	"encoding/json"

	"mozuku/internal/token"
)

func (s *Server) handleSemanticTokensFull(msg *rpcMessage) error {
	var params semanticTokensParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	return s.respondSemanticTokens(msg.ID, params.TextDocument.URI)
}

// Range requests answer with the full document array; clients clip to
// the viewport themselves.
func (s *Server) handleSemanticTokensRange(msg *rpcMessage) error {
	var params semanticTokensRangeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	return s.respondSemanticTokens(msg.ID, params.TextDocument.URI)
}

// Semantic tokens go out for japanese documents only; other languages
// are colored through mozuku/semanticHighlights.
func (s *Server) respondSemanticTokens(id json.RawMessage, rawURI string) error {
	uri := canonicalURI(rawURI)
	s.mu.Lock()
	doc, okDoc := s.docs[uri]
	res, okRes := s.results[uri]
	s.mu.Unlock()
	if !okDoc || !okRes || doc.languageID != "japanese" {
		return s.sendResponse(id, nil)
	}
	return s.sendResponse(id, semanticTokens{Data: encodeSemanticTokens(res.Tokens)})
}

// encodeSemanticTokens flattens tokens into the delta-encoded
// quintuples of the semantic tokens protocol: deltaLine, deltaStart,
// length, type index, modifier bits. Lengths count UTF-16 units.
func encodeSemanticTokens(tokens []token.Token) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevChar uint32
	for _, tok := range tokens {
		deltaLine := tok.Start.Line - prevLine
		deltaChar := tok.Start.Character
		if deltaLine == 0 {
			deltaChar = tok.Start.Character - prevChar
		}
		data = append(data,
			deltaLine,
			deltaChar,
			tok.End.Character-tok.Start.Character,
			uint32(tok.Kind),
			uint32(tok.Modifiers),
		)
		prevLine = tok.Start.Line
		prevChar = tok.Start.Character
	}
	return data
}
