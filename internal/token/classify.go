package token

import (
	"strings"
	"unicode"
)

var kindByPOS = map[string]Kind{
	"名詞":   Noun,
	"動詞":   Verb,
	"形容詞":  Adjective,
	"副詞":   Adverb,
	"助詞":   Particle,
	"助動詞":  Aux,
	"接続詞":  Conjunction,
	"記号":   Symbol,
	"感動詞":  Interj,
	"フィラー": Interj,
	"接頭詞":  Prefix,
}

// ClassifyKind maps a feature record to its legend kind. Marker checks
// run first: sub-categories like 接続助詞 or 名詞,接尾 must win over the
// coarse POS column.
func ClassifyKind(rec FeatureRecord) Kind {
	tag := rec.tag()
	switch {
	case strings.Contains(tag, "助詞"):
		return Particle
	case strings.Contains(tag, "助動詞"):
		return Aux
	case strings.Contains(tag, "接頭"):
		return Prefix
	case strings.Contains(tag, "接尾"):
		return Suffix
	}
	if k, ok := kindByPOS[rec.POS]; ok {
		return k
	}
	return Unknown
}

// ClassifyModifiers computes the modifier bits for one morpheme.
func ClassifyModifiers(rec FeatureRecord, surface string) ModifierSet {
	var mods ModifierSet
	if strings.Contains(rec.tag(), "固有名詞") {
		mods |= ModProper
	}
	if rec.Sub1 == "数" || isAllDigits(surface) || isNumericKanji(surface) {
		mods |= ModNumeric
	}
	if isAllKana(surface) {
		mods |= ModKana
	}
	if isAllKanji(surface) {
		mods |= ModKanji
	}
	return mods
}

// Блоки берём по кодпоинтам, не по unicode.RangeTable: границы должны
// совпадать с подсветкой клиента.
const (
	hiraganaLo = 0x3040
	hiraganaHi = 0x309F
	katakanaLo = 0x30A0
	katakanaHi = 0x30FF
	kanjiLo    = 0x4E00
	kanjiHi    = 0x9FFF
)

var numericKanji = map[rune]bool{
	'〇': true, '一': true, '二': true, '三': true, '四': true,
	'五': true, '六': true, '七': true, '八': true, '九': true,
	'十': true, '百': true, '千': true, '万': true, '億': true,
	'兆': true,
}

func isAllKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		kana := (r >= hiraganaLo && r <= hiraganaHi) || (r >= katakanaLo && r <= katakanaHi)
		if !kana {
			return false
		}
	}
	return true
}

func isAllKanji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < kanjiLo || r > kanjiHi {
			return false
		}
	}
	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isNumericKanji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !numericKanji[r] {
			return false
		}
	}
	return true
}
