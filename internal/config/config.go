// Package config loads mozuku.toml. The file is optional: every field
// falls back to a built-in default, and the LSP initializationOptions
// layer can still override the result at runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"mozuku/internal/diag"
	"mozuku/internal/driver"
	"mozuku/internal/grammar"
)

// Settings is the effective configuration after folding a config file
// over the defaults.
type Settings struct {
	Grammar        grammar.Config
	Debounce       time.Duration
	MaxDiagnostics int
	Wikipedia      bool
	WikipediaDisk  bool
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Grammar:        grammar.DefaultConfig(),
		Debounce:       300 * time.Millisecond,
		MaxDiagnostics: driver.DefaultMaxDiagnostics,
		Wikipedia:      true,
		WikipediaDisk:  true,
	}
}

// fileSchema mirrors mozuku.toml. Pointer fields distinguish "absent"
// from a zero value.
type fileSchema struct {
	Analysis  *analysisTable  `toml:"analysis"`
	Server    *serverTable    `toml:"server"`
	Wikipedia *wikipediaTable `toml:"wikipedia"`
}

type analysisTable struct {
	GrammarCheck       *bool       `toml:"grammar_check"`
	MinJapaneseRatio   *float64    `toml:"min_japanese_ratio"`
	WarningMinSeverity *int        `toml:"warning_min_severity"`
	Rules              *rulesTable `toml:"rules"`
}

type rulesTable struct {
	CommaLimit               *bool `toml:"comma_limit"`
	AdversativeGa            *bool `toml:"adversative_ga"`
	DuplicateParticleSurface *bool `toml:"duplicate_particle_surface"`
	AdjacentParticles        *bool `toml:"adjacent_particles"`
	ConjunctionRepeat        *bool `toml:"conjunction_repeat"`
	RaDropping               *bool `toml:"ra_dropping"`

	CommaLimitMax                     *int `toml:"comma_limit_max"`
	AdversativeGaMax                  *int `toml:"adversative_ga_max"`
	DuplicateParticleSurfaceMaxRepeat *int `toml:"duplicate_particle_surface_max_repeat"`
	AdjacentParticlesMaxRepeat        *int `toml:"adjacent_particles_max_repeat"`
	ConjunctionRepeatMax              *int `toml:"conjunction_repeat_max"`
}

type serverTable struct {
	DebounceMs     *int `toml:"debounce_ms"`
	MaxDiagnostics *int `toml:"max_diagnostics"`
}

type wikipediaTable struct {
	Enabled   *bool `toml:"enabled"`
	DiskCache *bool `toml:"disk_cache"`
}

// FindFile walks up from startDir to locate mozuku.toml.
func FindFile(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "mozuku.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads one file and folds it over the defaults.
func Load(path string) (Settings, error) {
	var file fileSchema
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	settings := Default()
	apply(&settings, file)
	return settings, nil
}

// Discover searches upward from startDir and loads what it finds. No
// file means the defaults.
func Discover(startDir string) (Settings, error) {
	path, ok, err := FindFile(startDir)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func apply(settings *Settings, file fileSchema) {
	if a := file.Analysis; a != nil {
		if a.GrammarCheck != nil {
			settings.Grammar.GrammarCheck = *a.GrammarCheck
		}
		if a.MinJapaneseRatio != nil {
			settings.Grammar.MinJapaneseRatio = *a.MinJapaneseRatio
		}
		if a.WarningMinSeverity != nil {
			settings.Grammar.WarningMinSeverity = diag.Severity(*a.WarningMinSeverity)
		}
		if r := a.Rules; r != nil {
			applyRules(&settings.Grammar.Rules, r)
		}
	}
	if s := file.Server; s != nil {
		if s.DebounceMs != nil && *s.DebounceMs > 0 {
			settings.Debounce = time.Duration(*s.DebounceMs) * time.Millisecond
		}
		if s.MaxDiagnostics != nil && *s.MaxDiagnostics > 0 {
			settings.MaxDiagnostics = *s.MaxDiagnostics
		}
	}
	if w := file.Wikipedia; w != nil {
		if w.Enabled != nil {
			settings.Wikipedia = *w.Enabled
		}
		if w.DiskCache != nil {
			settings.WikipediaDisk = *w.DiskCache
		}
	}
}

func applyRules(rules *grammar.Rules, r *rulesTable) {
	if r.CommaLimit != nil {
		rules.CommaLimit = *r.CommaLimit
	}
	if r.AdversativeGa != nil {
		rules.AdversativeGa = *r.AdversativeGa
	}
	if r.DuplicateParticleSurface != nil {
		rules.DuplicateParticleSurface = *r.DuplicateParticleSurface
	}
	if r.AdjacentParticles != nil {
		rules.AdjacentParticles = *r.AdjacentParticles
	}
	if r.ConjunctionRepeat != nil {
		rules.ConjunctionRepeat = *r.ConjunctionRepeat
	}
	if r.RaDropping != nil {
		rules.RaDropping = *r.RaDropping
	}
	if r.CommaLimitMax != nil {
		rules.CommaLimitMax = *r.CommaLimitMax
	}
	if r.AdversativeGaMax != nil {
		rules.AdversativeGaMax = *r.AdversativeGaMax
	}
	if r.DuplicateParticleSurfaceMaxRepeat != nil {
		rules.DuplicateParticleSurfaceMaxRepeat = *r.DuplicateParticleSurfaceMaxRepeat
	}
	if r.AdjacentParticlesMaxRepeat != nil {
		rules.AdjacentParticlesMaxRepeat = *r.AdjacentParticlesMaxRepeat
	}
	if r.ConjunctionRepeatMax != nil {
		rules.ConjunctionRepeatMax = *r.ConjunctionRepeatMax
	}
}
