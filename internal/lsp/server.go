// Package lsp serves the language protocol over stdio: document sync,
// published diagnostics, semantic tokens, hover, and the mozuku/*
// highlight notifications. Analysis itself lives in internal/driver;
// this package only moves documents in and results out.
package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"mozuku/internal/driver"
	"mozuku/internal/grammar"
	"mozuku/internal/morph"
	"mozuku/internal/token"
	"mozuku/internal/wiki"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown signals an "exit" without a preceding "shutdown".
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

// Summarizer supplies hover summaries without blocking: Lookup is
// cache-only, Prefetch warms the cache in the background. *wiki.Client
// implements it.
type Summarizer interface {
	Lookup(query string) (wiki.Entry, bool)
	Prefetch(query string)
}

// ServerOptions configures server behavior.
type ServerOptions struct {
	Debounce       time.Duration
	Analyzer       morph.Analyzer
	Summaries      Summarizer
	Config         grammar.Config
	MaxDiagnostics int
	Logger         *slog.Logger
}

type document struct {
	text       string
	languageID string
	version    int
}

// Server handles stdio JSON-RPC.
type Server struct {
	in     *bufio.Reader
	out    *bufio.Writer
	sendMu sync.Mutex

	mu        sync.Mutex
	docs      map[string]*document
	results   map[string]driver.AnalysisResult
	published map[string]struct{}
	timers    map[string]*time.Timer
	seqs      map[string]uint64
	cfg       grammar.Config

	shutdownRequested bool
	debounce          time.Duration
	analyzer          morph.Analyzer
	summaries         Summarizer
	maxDiagnostics    int
	log               *slog.Logger
	baseCtx           context.Context
}

// NewServer constructs a server reading requests from in and writing
// responses to out.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = driver.DefaultMaxDiagnostics
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		in:             bufio.NewReader(in),
		out:            bufio.NewWriter(out),
		docs:           make(map[string]*document),
		results:        make(map[string]driver.AnalysisResult),
		published:      make(map[string]struct{}),
		timers:         make(map[string]*time.Timer),
		seqs:           make(map[string]uint64),
		cfg:            opts.Config,
		debounce:       debounce,
		analyzer:       opts.Analyzer,
		summaries:      opts.Summaries,
		maxDiagnostics: maxDiagnostics,
		log:            logger,
	}
}

// Run serves requests until the client disconnects or asks to exit.
func (s *Server) Run(ctx context.Context) error {
	s.baseCtx = ctx
	for {
		payload, err := readMessage(s.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.log.Warn("failed to parse message", "err", err)
			continue
		}
		if msg.Method == "" {
			continue
		}
		if err := s.handleMessage(&msg); err != nil {
			return err
		}
	}
}

func (s *Server) handleMessage(msg *rpcMessage) error {
	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		return s.handleShutdown(msg)
	case "exit":
		if s.shutdownRequested {
			return ErrExit
		}
		return ErrExitWithoutShutdown
	case "workspace/didChangeConfiguration":
		return s.handleDidChangeConfiguration(msg)
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didSave":
		return s.handleDidSave(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "textDocument/semanticTokens/full":
		return s.handleSemanticTokensFull(msg)
	case "textDocument/semanticTokens/range":
		return s.handleSemanticTokensRange(msg)
	default:
		if len(msg.ID) > 0 {
			return s.sendError(msg.ID, -32601, "method not found")
		}
		return nil
	}
}

func (s *Server) handleInitialize(msg *rpcMessage) error {
	var params initializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	if len(params.InitializationOptions) > 0 {
		var opts initOptions
		if err := json.Unmarshal(params.InitializationOptions, &opts); err == nil {
			s.mu.Lock()
			applyOptions(&s.cfg, opts)
			s.mu.Unlock()
			if opts.Model != nil && *opts.Model != "" && *opts.Model != "ipa" {
				s.log.Warn("unsupported dictionary model, using ipa", "model", *opts.Model)
			}
		}
	}

	result := initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync: textDocumentSyncOptions{
				OpenClose: true,
				Change:    2,
				Save:      saveOptions{IncludeText: false},
			},
			SemanticTokensProvider: &semanticTokensOptions{
				Legend: semanticTokensLegend{
					TokenTypes:     token.LegendKinds(),
					TokenModifiers: token.LegendModifiers(),
				},
				Range: true,
				Full:  true,
			},
			HoverProvider: true,
		},
	}
	return s.sendResponse(msg.ID, result)
}

func (s *Server) handleShutdown(msg *rpcMessage) error {
	s.mu.Lock()
	s.shutdownRequested = true
	for uri, timer := range s.timers {
		timer.Stop()
		delete(s.timers, uri)
	}
	s.mu.Unlock()
	s.clearPublishedDiagnostics()
	return s.sendResponse(msg.ID, nil)
}

func (s *Server) handleDidOpen(msg *rpcMessage) error {
	var params didOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	s.docs[uri] = &document{
		text:       params.TextDocument.Text,
		languageID: params.TextDocument.LanguageID,
		version:    params.TextDocument.Version,
	}
	s.mu.Unlock()
	s.scheduleAnalysis(uri)
	return nil
}

func (s *Server) handleDidChange(msg *rpcMessage) error {
	var params didChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	doc.text = applyChanges(doc.text, params.ContentChanges)
	doc.version = params.TextDocument.Version
	s.mu.Unlock()
	s.scheduleAnalysis(uri)
	return nil
}

func (s *Server) handleDidSave(msg *rpcMessage) error {
	var params didSaveTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if ok && params.Text != nil {
		doc.text = *params.Text
	}
	s.mu.Unlock()
	if ok {
		s.scheduleAnalysis(uri)
	}
	return nil
}

func (s *Server) handleDidClose(msg *rpcMessage) error {
	var params didCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	delete(s.docs, uri)
	delete(s.results, uri)
	delete(s.seqs, uri)
	if timer, ok := s.timers[uri]; ok {
		timer.Stop()
		delete(s.timers, uri)
	}
	_, hadDiagnostics := s.published[uri]
	delete(s.published, uri)
	s.mu.Unlock()
	if hadDiagnostics {
		if err := s.sendPublish(uri, 0, nil); err != nil {
			s.log.Warn("failed to clear diagnostics", "err", err)
		}
	}
	return nil
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	if len(s.published) == 0 {
		s.mu.Unlock()
		return
	}
	prev := s.published
	s.published = make(map[string]struct{})
	s.mu.Unlock()
	for uri := range prev {
		if err := s.sendPublish(uri, 0, nil); err != nil {
			s.log.Warn("failed to clear diagnostics", "err", err)
		}
	}
}

func (s *Server) sendResponse(id json.RawMessage, result any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      json.RawMessage(id),
		"result":  result,
	}
	return s.send(msg)
}

func (s *Server) sendError(id json.RawMessage, code int, message string) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      json.RawMessage(id),
		"error": rpcError{
			Code:    code,
			Message: message,
		},
	}
	return s.send(msg)
}

func (s *Server) sendNotification(method string, params any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	}
	return s.send(msg)
}

func (s *Server) sendPublish(uri string, version int, list []lspDiagnostic) error {
	if list == nil {
		list = []lspDiagnostic{}
	}
	return s.sendNotification("textDocument/publishDiagnostics", publishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: list,
	})
}

func (s *Server) send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := writeMessage(s.out, payload); err != nil {
		return err
	}
	return s.out.Flush()
}
