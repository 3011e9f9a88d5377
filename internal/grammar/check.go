// Package grammar is the rule engine: six independent rules over the
// token stream and sentence boundaries of one analysis text. Rules
// are pure; the same text, tokens and config always yield the same
// diagnostics in the same order. Counters live per sentence (or per
// document for the two document-scoped rules), so unrelated sentences
// never feed each other's streaks.
package grammar

import (
	"mozuku/internal/diag"
	"mozuku/internal/morph"
	"mozuku/internal/token"
)

// Check runs every enabled rule and appends findings to bag. Text
// below the Japanese ratio floor produces nothing; the tokens are
// still the caller's to keep.
func Check(text string, tokens []token.Token, sentences []morph.Sentence, cfg Config, bag *diag.Bag) {
	if !cfg.GrammarCheck {
		return
	}
	if morph.JapaneseRatio(text) < cfg.MinJapaneseRatio {
		return
	}

	r := cfg.Rules
	if r.CommaLimit {
		checkCommaLimit(sentences, r.CommaLimitMax, bag)
	}
	if r.AdversativeGa {
		checkAdversativeGa(tokens, sentences, r.AdversativeGaMax, bag)
	}
	if r.DuplicateParticleSurface {
		checkDuplicateParticleSurface(tokens, sentences, r.DuplicateParticleSurfaceMaxRepeat, bag)
	}
	if r.AdjacentParticles {
		checkAdjacentParticles(tokens, sentences, r.AdjacentParticlesMaxRepeat, bag)
	}
	if r.ConjunctionRepeat {
		checkConjunctionRepeat(text, tokens, r.ConjunctionRepeatMax, bag)
	}
	if r.RaDropping {
		checkRaDropping(tokens, bag)
	}

	if cfg.WarningMinSeverity > 0 {
		bag.Filter(func(d diag.Diagnostic) bool {
			return d.Severity.AtLeast(cfg.WarningMinSeverity)
		})
	}
}
