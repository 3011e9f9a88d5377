package lsp

import (
	"encoding/json"

	"mozuku/internal/diag"
	"mozuku/internal/grammar"
)

// initOptions mirrors the initializationOptions shape; the same block
// arrives under the "mozuku" key of workspace/didChangeConfiguration.
// Pointer fields distinguish "absent" from a zero value.
type initOptions struct {
	Model    *string          `json:"model,omitempty"`
	Analysis *analysisOptions `json:"analysis,omitempty"`
}

type analysisOptions struct {
	GrammarCheck       *bool         `json:"grammarCheck,omitempty"`
	MinJapaneseRatio   *float64      `json:"minJapaneseRatio,omitempty"`
	WarningMinSeverity *int          `json:"warningMinSeverity,omitempty"`
	Rules              *rulesOptions `json:"rules,omitempty"`
}

type rulesOptions struct {
	CommaLimit                        *bool `json:"commaLimit,omitempty"`
	AdversativeGa                     *bool `json:"adversativeGa,omitempty"`
	DuplicateParticleSurface          *bool `json:"duplicateParticleSurface,omitempty"`
	AdjacentParticles                 *bool `json:"adjacentParticles,omitempty"`
	ConjunctionRepeat                 *bool `json:"conjunctionRepeat,omitempty"`
	RaDropping                        *bool `json:"raDropping,omitempty"`
	CommaLimitMax                     *int  `json:"commaLimitMax,omitempty"`
	AdversativeGaMax                  *int  `json:"adversativeGaMax,omitempty"`
	DuplicateParticleSurfaceMaxRepeat *int  `json:"duplicateParticleSurfaceMaxRepeat,omitempty"`
	AdjacentParticlesMaxRepeat        *int  `json:"adjacentParticlesMaxRepeat,omitempty"`
	ConjunctionRepeatMax              *int  `json:"conjunctionRepeatMax,omitempty"`
}

type workspaceSettings struct {
	Mozuku *initOptions `json:"mozuku,omitempty"`
}

// applyOptions folds the present fields of opts into cfg.
func applyOptions(cfg *grammar.Config, opts initOptions) {
	a := opts.Analysis
	if a == nil {
		return
	}
	if a.GrammarCheck != nil {
		cfg.GrammarCheck = *a.GrammarCheck
	}
	if a.MinJapaneseRatio != nil {
		cfg.MinJapaneseRatio = *a.MinJapaneseRatio
	}
	if a.WarningMinSeverity != nil {
		cfg.WarningMinSeverity = diag.Severity(*a.WarningMinSeverity)
	}
	r := a.Rules
	if r == nil {
		return
	}
	if r.CommaLimit != nil {
		cfg.Rules.CommaLimit = *r.CommaLimit
	}
	if r.AdversativeGa != nil {
		cfg.Rules.AdversativeGa = *r.AdversativeGa
	}
	if r.DuplicateParticleSurface != nil {
		cfg.Rules.DuplicateParticleSurface = *r.DuplicateParticleSurface
	}
	if r.AdjacentParticles != nil {
		cfg.Rules.AdjacentParticles = *r.AdjacentParticles
	}
	if r.ConjunctionRepeat != nil {
		cfg.Rules.ConjunctionRepeat = *r.ConjunctionRepeat
	}
	if r.RaDropping != nil {
		cfg.Rules.RaDropping = *r.RaDropping
	}
	if r.CommaLimitMax != nil {
		cfg.Rules.CommaLimitMax = *r.CommaLimitMax
	}
	if r.AdversativeGaMax != nil {
		cfg.Rules.AdversativeGaMax = *r.AdversativeGaMax
	}
	if r.DuplicateParticleSurfaceMaxRepeat != nil {
		cfg.Rules.DuplicateParticleSurfaceMaxRepeat = *r.DuplicateParticleSurfaceMaxRepeat
	}
	if r.AdjacentParticlesMaxRepeat != nil {
		cfg.Rules.AdjacentParticlesMaxRepeat = *r.AdjacentParticlesMaxRepeat
	}
	if r.ConjunctionRepeatMax != nil {
		cfg.Rules.ConjunctionRepeatMax = *r.ConjunctionRepeatMax
	}
}

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil
	}
	s.applySettings(params.Settings)
	return nil
}

func (s *Server) applySettings(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var settings workspaceSettings
	if err := json.Unmarshal(raw, &settings); err != nil || settings.Mozuku == nil {
		return
	}

	s.mu.Lock()
	applyOptions(&s.cfg, *settings.Mozuku)
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	s.mu.Unlock()

	// New configuration takes effect on the next analysis pass.
	for _, uri := range uris {
		s.scheduleAnalysis(uri)
	}
}
