package grammar

import (
	"fmt"
	"strings"

	"mozuku/internal/diag"
	"mozuku/internal/morph"
	"mozuku/internal/source"
	"mozuku/internal/token"
)

// Правила сверяют поля фичей напрямую: записи, где нужная колонка
// отсутствует ("*"), не совпадают никогда.

func isParticle(t token.Token) bool {
	return t.Feature.POS == "助詞"
}

func isConjunction(t token.Token) bool {
	return t.Feature.POS == "接続詞"
}

func isAdversativeGa(t token.Token) bool {
	f := t.Feature
	return f.POS == "助詞" && f.Sub1 == "接続助詞" && f.Base == "が"
}

func isSpecialRaCase(t token.Token) bool {
	f := t.Feature
	return f.POS == "動詞" && (f.Base == "来れる" || f.Base == "見れる")
}

func isTargetVerb(t token.Token) bool {
	f := t.Feature
	return f.POS == "動詞" && f.Sub1 == "自立" && f.InflType == "一段" && f.InflForm == "未然形"
}

func isRaSuffix(t token.Token) bool {
	f := t.Feature
	return f.POS == "動詞" && f.Sub1 == "接尾" && f.Base == "れる"
}

// inSentence places a token by its start byte only.
func inSentence(off uint32, s morph.Sentence) bool {
	return s.Span.Start <= off && off < s.Span.End
}

// checkCommaLimit flags sentences with more than limit 読点.
func checkCommaLimit(sentences []morph.Sentence, limit int, bag *diag.Bag) {
	if limit <= 0 {
		return
	}
	for _, s := range sentences {
		count := strings.Count(s.Text, "、")
		if count <= limit {
			continue
		}
		bag.Add(diag.NewWarning(
			diag.GrammarCommaLimit,
			s.Span,
			fmt.Sprintf("一文に使用できる読点「、」は最大%d個までです (現在%d個)", limit, count),
		))
	}
}

// checkAdversativeGa flags sentences using the adversative particle
// が more than maxCount times.
func checkAdversativeGa(tokens []token.Token, sentences []morph.Sentence, maxCount int, bag *diag.Bag) {
	if maxCount <= 0 {
		return
	}
	for _, s := range sentences {
		count := 0
		for _, tok := range tokens {
			if isAdversativeGa(tok) && inSentence(tok.Span.Start, s) {
				count++
			}
		}
		if count <= maxCount {
			continue
		}
		bag.Add(diag.NewWarning(
			diag.GrammarAdversativeGa,
			s.Span,
			fmt.Sprintf("逆接の接続助詞「が」が同一文で%d回以上使われています (%d回)", maxCount+1, count),
		))
	}
}

// checkDuplicateParticleSurface flags runs of the same particle
// surface within a sentence. Non-particle tokens between two
// particles do not break the run; a line break does.
func checkDuplicateParticleSurface(tokens []token.Token, sentences []morph.Sentence, maxRepeat int, bag *diag.Bag) {
	if maxRepeat <= 0 {
		return
	}
	for _, s := range sentences {
		var (
			lastSurface string
			lastKey     string
			streakStart uint32
			lastLine    uint32
			hasLast     bool
		)
		streak := 1
		for _, tok := range tokens {
			if !inSentence(tok.Span.Start, s) {
				continue
			}
			if !isParticle(tok) {
				continue
			}
			key := tok.Feature.Key()

			// Повтор через перенос строки повтором не считается.
			if hasLast && tok.Line() != lastLine {
				streak = 1
				streakStart = tok.Span.Start
				hasLast = false
			}

			if hasLast && tok.Surface == lastSurface && key == lastKey {
				streak++
				if streak > maxRepeat {
					bag.Add(diag.NewWarning(
						diag.GrammarDuplicateParticle,
						source.Span{Start: streakStart, End: tok.Span.End},
						fmt.Sprintf("同じ助詞「%s」が連続しています", tok.Surface),
					))
				}
			} else {
				streak = 1
				streakStart = tok.Span.Start
			}

			lastSurface = tok.Surface
			lastKey = key
			lastLine = tok.Line()
			hasLast = true
		}
	}
}

// checkAdjacentParticles flags byte-adjacent particles of the same
// category within a sentence.
func checkAdjacentParticles(tokens []token.Token, sentences []morph.Sentence, maxRepeat int, bag *diag.Bag) {
	if maxRepeat <= 0 {
		return
	}
	for _, s := range sentences {
		var (
			prevIsParticle bool
			prevKey        string
			prevStart      uint32
			prevEnd        uint32
			hasPrev        bool
		)
		streak := 1
		for _, tok := range tokens {
			if !inSentence(tok.Span.Start, s) {
				continue
			}
			curIsParticle := isParticle(tok)
			curKey := tok.Feature.Key()

			if curIsParticle && prevIsParticle && curKey == prevKey && hasPrev {
				if tok.Span.Start == prevEnd {
					streak++
					if streak > maxRepeat {
						bag.Add(diag.NewWarning(
							diag.GrammarAdjacentParticles,
							source.Span{Start: prevStart, End: tok.Span.End},
							"助詞が連続して使われています",
						))
					}
				}
			} else {
				streak = 1
				if curIsParticle {
					prevStart = tok.Span.Start
				}
			}

			prevIsParticle = curIsParticle
			if curIsParticle {
				hasPrev = true
				prevStart = tok.Span.Start
				prevEnd = tok.Span.End
				prevKey = curKey
			}
		}
	}
}

// checkConjunctionRepeat flags the same conjunction reused without an
// intervening line break. Document-scoped: sentence boundaries do not
// reset the run, a newline between occurrences does.
func checkConjunctionRepeat(text string, tokens []token.Token, maxRepeat int, bag *diag.Bag) {
	if maxRepeat <= 0 {
		return
	}
	var (
		lastSurface string
		lastStart   uint32
		lastEnd     uint32
		hasLast     bool
	)
	streak := 1
	for _, tok := range tokens {
		if !isConjunction(tok) {
			continue
		}

		separated := false
		if hasLast && lastEnd <= tok.Span.Start && int(tok.Span.Start) <= len(text) {
			separated = strings.Contains(text[lastEnd:tok.Span.Start], "\n")
		}

		if hasLast && tok.Surface == lastSurface && !separated {
			streak++
			if streak > maxRepeat {
				bag.Add(diag.NewWarning(
					diag.GrammarConjunctionRepeat,
					source.Span{Start: lastStart, End: tok.Span.End},
					fmt.Sprintf("同じ接続詞「%s」が連続しています", tok.Surface),
				))
			}
		} else {
			streak = 1
		}

		lastSurface = tok.Surface
		lastStart = tok.Span.Start
		lastEnd = tok.Span.End
		hasLast = true
	}
}

// checkRaDropping flags ら抜き言葉: lexicalized 来れる/見れる, and a
// 一段 verb in 未然形 followed by the suffix れる. No threshold.
func checkRaDropping(tokens []token.Token, bag *diag.Bag) {
	const message = "ら抜き言葉を使用しています"

	for _, tok := range tokens {
		if isSpecialRaCase(tok) {
			bag.Add(diag.NewWarning(diag.GrammarRaDropping, tok.Span, message))
		}
	}

	for i := 1; i < len(tokens); i++ {
		if isTargetVerb(tokens[i-1]) && isRaSuffix(tokens[i]) {
			bag.Add(diag.NewWarning(
				diag.GrammarRaDropping,
				source.Span{Start: tokens[i-1].Span.Start, End: tokens[i].Span.End},
				message,
			))
		}
	}
}
