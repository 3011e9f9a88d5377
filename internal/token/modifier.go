package token

import "strings"

// ModifierSet is a bitset of highlight modifiers.
type ModifierSet uint8

const (
	// ModProper marks proper nouns (固有名詞).
	ModProper ModifierSet = 1 << iota // proper
	// ModNumeric marks numerals: 名詞,数, digit surfaces, numeral kanji.
	ModNumeric // numeric
	// ModKana marks surfaces written entirely in kana.
	ModKana // kana
	// ModKanji marks surfaces written entirely in kanji.
	ModKanji // kanji
)

var modifierNames = []string{"proper", "numeric", "kana", "kanji"}

// LegendModifiers returns the modifier names in bit order. The slice
// is shared; callers must not modify it.
func LegendModifiers() []string {
	return modifierNames
}

// Has reports whether all bits of m are set.
func (s ModifierSet) Has(m ModifierSet) bool {
	return s&m == m
}

// Names returns the set as legend names, in bit order.
func (s ModifierSet) Names() []string {
	if s == 0 {
		return nil
	}
	parts := make([]string, 0, len(modifierNames))
	for i, name := range modifierNames {
		if s&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return parts
}

func (s ModifierSet) String() string {
	if s == 0 {
		return "-"
	}
	return strings.Join(s.Names(), "|")
}
