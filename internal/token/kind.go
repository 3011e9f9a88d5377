package token

// Kind represents the grammatical category of a token.
type Kind uint8

const (
	// Noun represents 名詞.
	Noun Kind = iota // noun
	// Verb represents 動詞.
	Verb // verb
	// Adjective represents 形容詞.
	Adjective // adjective
	// Adverb represents 副詞.
	Adverb // adverb
	// Particle represents 助詞, including sub-categories such as 接続助詞.
	Particle // particle
	// Aux represents 助動詞.
	Aux // aux
	// Conjunction represents 接続詞.
	Conjunction // conjunction
	// Symbol represents 記号 and punctuation.
	Symbol // symbol
	// Interj represents 感動詞 and fillers.
	Interj // interj
	// Prefix represents 接頭詞.
	Prefix // prefix
	// Suffix represents 接尾 sub-categories (名詞,接尾 and friends).
	Suffix // suffix
	// Unknown covers everything the classifier cannot place.
	Unknown // unknown

	kindCount
)

var kindNames = [...]string{
	Noun:        "noun",
	Verb:        "verb",
	Adjective:   "adjective",
	Adverb:      "adverb",
	Particle:    "particle",
	Aux:         "aux",
	Conjunction: "conjunction",
	Symbol:      "symbol",
	Interj:      "interj",
	Prefix:      "prefix",
	Suffix:      "suffix",
	Unknown:     "unknown",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// LegendKinds returns the kind names in legend order. The slice is
// shared; callers must not modify it.
func LegendKinds() []string {
	return kindNames[:]
}
