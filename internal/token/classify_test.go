package token

import (
	"testing"
)

func rec(fields ...string) FeatureRecord {
	return ParseFeatures(fields)
}

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		name     string
		rec      FeatureRecord
		expected Kind
	}{
		{
			name:     "plain noun",
			rec:      rec("名詞", "一般"),
			expected: Noun,
		},
		{
			name:     "verb",
			rec:      rec("動詞", "自立", "*", "*", "一段", "基本形", "食べる"),
			expected: Verb,
		},
		{
			name:     "adjective",
			rec:      rec("形容詞", "自立"),
			expected: Adjective,
		},
		{
			name:     "adverb",
			rec:      rec("副詞", "一般"),
			expected: Adverb,
		},
		{
			name:     "case particle",
			rec:      rec("助詞", "格助詞", "一般"),
			expected: Particle,
		},
		{
			name:     "conjunctive particle sub-category still particle",
			rec:      rec("助詞", "接続助詞"),
			expected: Particle,
		},
		{
			name:     "auxiliary",
			rec:      rec("助動詞", "*", "*", "*", "特殊・デス", "基本形", "です"),
			expected: Aux,
		},
		{
			name:     "conjunction",
			rec:      rec("接続詞", "*"),
			expected: Conjunction,
		},
		{
			name:     "symbol",
			rec:      rec("記号", "読点"),
			expected: Symbol,
		},
		{
			name:     "interjection",
			rec:      rec("感動詞"),
			expected: Interj,
		},
		{
			name:     "filler maps to interjection",
			rec:      rec("フィラー"),
			expected: Interj,
		},
		{
			name:     "prefix",
			rec:      rec("接頭詞", "名詞接続"),
			expected: Prefix,
		},
		{
			name:     "noun suffix overrides noun",
			rec:      rec("名詞", "接尾", "人名"),
			expected: Suffix,
		},
		{
			name:     "verb suffix overrides verb",
			rec:      rec("動詞", "接尾", "*", "*", "一段", "基本形", "れる"),
			expected: Suffix,
		},
		{
			name:     "counter word is not a particle",
			rec:      rec("名詞", "接尾", "助数詞"),
			expected: Suffix,
		},
		{
			name:     "adnominal falls through to unknown",
			rec:      rec("連体詞"),
			expected: Unknown,
		},
		{
			name:     "empty record",
			rec:      rec(),
			expected: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyKind(tt.rec); got != tt.expected {
				t.Errorf("ClassifyKind(%s) = %v, want %v", tt.rec.CSV(), got, tt.expected)
			}
		})
	}
}

func TestClassifyModifiers(t *testing.T) {
	tests := []struct {
		name     string
		rec      FeatureRecord
		surface  string
		expected ModifierSet
	}{
		{
			name:     "proper noun in kanji",
			rec:      rec("名詞", "固有名詞", "人名", "姓"),
			surface:  "田中",
			expected: ModProper | ModKanji,
		},
		{
			name:     "numeric by POS",
			rec:      rec("名詞", "数"),
			surface:  "3",
			expected: ModNumeric,
		},
		{
			name:     "ascii digits",
			rec:      rec("名詞", "一般"),
			surface:  "2024",
			expected: ModNumeric,
		},
		{
			name:     "full-width digits",
			rec:      rec("名詞", "一般"),
			surface:  "１２３",
			expected: ModNumeric,
		},
		{
			name:     "numeral kanji are numeric and kanji",
			rec:      rec("名詞", "一般"),
			surface:  "三万",
			expected: ModNumeric | ModKanji,
		},
		{
			name:     "hiragana surface",
			rec:      rec("助動詞"),
			surface:  "です",
			expected: ModKana,
		},
		{
			name:     "katakana surface with prolonged mark",
			rec:      rec("名詞", "一般"),
			surface:  "サーバー",
			expected: ModKana,
		},
		{
			name:     "plain kanji word",
			rec:      rec("名詞", "一般"),
			surface:  "言語",
			expected: ModKanji,
		},
		{
			name:     "mixed scripts get neither script bit",
			rec:      rec("動詞", "自立"),
			surface:  "食べる",
			expected: 0,
		},
		{
			name:     "punctuation",
			rec:      rec("記号", "読点"),
			surface:  "、",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyModifiers(tt.rec, tt.surface); got != tt.expected {
				t.Errorf("ClassifyModifiers(%q) = %v, want %v", tt.surface, got, tt.expected)
			}
		})
	}
}

func TestLegendOrderMatchesKindValues(t *testing.T) {
	legend := LegendKinds()
	if len(legend) != int(kindCount) {
		t.Fatalf("legend has %d entries, want %d", len(legend), kindCount)
	}
	if legend[Noun] != "noun" || legend[Unknown] != "unknown" {
		t.Errorf("legend order broken: %v", legend)
	}
	if int(Particle) != 4 || int(Suffix) != 10 {
		t.Errorf("kind values drifted: particle=%d suffix=%d", Particle, Suffix)
	}
}

func TestModifierSetNames(t *testing.T) {
	if names := ModifierSet(0).Names(); names != nil {
		t.Errorf("empty set names = %v, want nil", names)
	}
	got := (ModProper | ModKanji).Names()
	if len(got) != 2 || got[0] != "proper" || got[1] != "kanji" {
		t.Errorf("Names() = %v, want [proper kanji]", got)
	}
	if s := (ModProper | ModKanji).String(); s != "proper|kanji" {
		t.Errorf("String() = %q", s)
	}
	if s := ModifierSet(0).String(); s != "-" {
		t.Errorf("empty String() = %q, want -", s)
	}
}
