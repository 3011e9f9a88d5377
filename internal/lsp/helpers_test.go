package lsp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"mozuku/internal/grammar"
	"mozuku/internal/morph"
	"mozuku/internal/token"
)

// fakeAnalyzer splits sentences without a dictionary, so the tests do
// not depend on the real tokenizer.
type fakeAnalyzer struct{}

func (fakeAnalyzer) Analyze(text string) []token.Token { return nil }

func (fakeAnalyzer) Sentences(text string) []morph.Sentence {
	return morph.SplitSentences(text)
}

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	server := NewServer(bytes.NewReader(nil), &out, ServerOptions{
		Debounce: time.Hour,
		Analyzer: fakeAnalyzer{},
		Config:   grammar.DefaultConfig(),
	})
	server.baseCtx = context.Background()
	return server, &out
}

func openDoc(t *testing.T, server *Server, uri, languageID, text string) {
	t.Helper()
	params := didOpenTextDocumentParams{
		TextDocument: textDocumentItem{
			URI:        uri,
			LanguageID: languageID,
			Version:    1,
			Text:       text,
		},
	}
	payload, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal didOpen params: %v", err)
	}
	if err := server.handleDidOpen(&rpcMessage{Method: "textDocument/didOpen", Params: payload}); err != nil {
		t.Fatalf("didOpen: %v", err)
	}
}

// flushAnalysis runs the pending debounced analysis synchronously.
func flushAnalysis(server *Server, uri string) {
	key := canonicalURI(uri)
	server.mu.Lock()
	seq := server.seqs[key]
	if timer, ok := server.timers[key]; ok {
		timer.Stop()
	}
	server.mu.Unlock()
	server.runAnalysis(key, seq)
}

func readMessages(t *testing.T, out *bytes.Buffer) []rpcMessage {
	t.Helper()
	reader := bufio.NewReader(bytes.NewReader(out.Bytes()))
	var msgs []rpcMessage
	for {
		payload, err := readMessage(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("read message: %v", err)
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
