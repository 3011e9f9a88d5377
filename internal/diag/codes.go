package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Грамматические правила
	GrammarCommaLimit        Code = 1001
	GrammarAdversativeGa     Code = 1002
	GrammarDuplicateParticle Code = 1003
	GrammarAdjacentParticles Code = 1004
	GrammarConjunctionRepeat Code = 1005
	GrammarRaDropping        Code = 1006

	// Ошибки ввода-вывода
	IOLoadFile Code = 9001
)

var codeName = map[Code]string{
	UnknownCode:              "unknown",
	GrammarCommaLimit:        "comma_limit",
	GrammarAdversativeGa:     "adversative_ga",
	GrammarDuplicateParticle: "duplicate_particle_surface",
	GrammarAdjacentParticles: "adjacent_particles",
	GrammarConjunctionRepeat: "conjunction_repeat",
	GrammarRaDropping:        "ra_dropping",
	IOLoadFile:               "load_file",
}

// ID returns the compact identifier, e.g. GRM1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("GRM%04d", ic)
	case ic >= 9000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Name returns the rule name as it appears in configuration keys and
// in the LSP diagnostic code field.
func (c Code) Name() string {
	name, ok := codeName[c]
	if !ok {
		return codeName[UnknownCode]
	}
	return name
}

func (c Code) String() string {
	return c.Name()
}
