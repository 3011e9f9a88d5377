package morph

import "unicode"

// JapaneseRatio reports the share of Japanese runes among the
// non-space runes of text. Empty or all-whitespace text is 0.
func JapaneseRatio(text string) float64 {
	var japanese, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if isJapaneseRune(r) {
			japanese++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(japanese) / float64(total)
}

// isJapaneseRune covers hiragana, katakana and the unified ideographs.
func isJapaneseRune(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0x4E00 && r <= 0x9FFF)
}
