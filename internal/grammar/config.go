package grammar

import "mozuku/internal/diag"

// Rules toggles the six rules and carries their thresholds. A
// threshold of zero or less disables its rule even when the toggle is
// on.
type Rules struct {
	CommaLimit               bool
	AdversativeGa            bool
	DuplicateParticleSurface bool
	AdjacentParticles        bool
	ConjunctionRepeat        bool
	RaDropping               bool

	CommaLimitMax                     int
	AdversativeGaMax                  int
	DuplicateParticleSurfaceMaxRepeat int
	AdjacentParticlesMaxRepeat        int
	ConjunctionRepeatMax              int
}

// DefaultRules enables everything: up to three commas per sentence,
// one repeat elsewhere.
func DefaultRules() Rules {
	return Rules{
		CommaLimit:               true,
		AdversativeGa:            true,
		DuplicateParticleSurface: true,
		AdjacentParticles:        true,
		ConjunctionRepeat:        true,
		RaDropping:               true,

		CommaLimitMax:                     3,
		AdversativeGaMax:                  1,
		DuplicateParticleSurfaceMaxRepeat: 1,
		AdjacentParticlesMaxRepeat:        1,
		ConjunctionRepeatMax:              1,
	}
}

// Config is the analysis configuration snapshot. It is set once per
// session (or on a configuration change) and read by every pass;
// rules never write it.
type Config struct {
	GrammarCheck       bool
	MinJapaneseRatio   float64
	WarningMinSeverity diag.Severity
	Rules              Rules
}

func DefaultConfig() Config {
	return Config{
		GrammarCheck:       true,
		MinJapaneseRatio:   0.1,
		WarningMinSeverity: diag.SevWarning,
		Rules:              DefaultRules(),
	}
}
