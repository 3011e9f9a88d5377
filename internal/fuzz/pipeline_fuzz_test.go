package fuzztests

import (
	"testing"

	"mozuku/internal/diag"
	"mozuku/internal/grammar"
	"mozuku/internal/morph"
	"mozuku/internal/testkit"
)

// FuzzSplitSentences checks the segmentation contract on arbitrary
// bytes: spans are ordered, non-overlapping, in bounds, and each
// sentence text matches its span.
func FuzzSplitSentences(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}
		text := string(input)

		sentences := morph.SplitSentences(text)
		if err := testkit.CheckSentenceInvariants(sentences, text); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzGrammarCheck drives the rules over arbitrary text without a
// tokenizer: rules must degrade, not panic, and respect the bag cap.
func FuzzGrammarCheck(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}
		text := string(input)

		sentences := morph.SplitSentences(text)
		bag := diag.NewBag(64)
		grammar.Check(text, nil, sentences, grammar.DefaultConfig(), bag)

		if bag.Len() > 64 {
			t.Fatalf("bag exceeded its cap: %d items", bag.Len())
		}
		for _, d := range bag.Items() {
			if int(d.Primary.End) > len(text) {
				t.Fatalf("diagnostic span beyond text: %v", d.Primary)
			}
		}
	})
}
