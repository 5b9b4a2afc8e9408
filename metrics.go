package readability

import (
	"math"
	"strings"
)

// FRES computes the Flesch Reading Ease Score. Higher scores read easier.
// The text must contain at least one word and one sentence.
func (a *Analyzer) FRES(text string) float64 {
	words := a.WordList(text)
	sentences := a.SentenceList(text)

	syllables := 0
	for _, w := range words {
		syllables += a.SyllableCount(w)
	}

	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(syllables) / float64(len(words))

	return 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
}

// ARI computes the Automated Readability Index. Characters are counted as
// raw token lengths, embedded punctuation included. The text must contain at
// least one word and one sentence.
func (a *Analyzer) ARI(text string) float64 {
	words := a.WordList(text)
	sentences := a.SentenceList(text)

	chars := 0
	for _, w := range words {
		chars += len(w)
	}

	avgChars := float64(chars) / float64(len(words))
	avgSentenceLen := float64(len(words)) / float64(len(sentences))

	return 4.71*avgChars + 0.5*avgSentenceLen - 21.43
}

// GFI computes the Gunning Fog Index. A word is complex when it has three or
// more syllables, is not tagged as a proper noun, contains no hyphen, and is
// not a three-syllable verb form ending in "es", "ed", or "ing".
//
// The complex-word term is the fraction complex/total, not a percentage.
// This is a known deviation from the textbook formula, kept because
// correcting it changes every historical score.
func (a *Analyzer) GFI(text string) float64 {
	words := a.WordList(text)
	sentences := a.SentenceList(text)

	tags := a.tagger.Tag(words)
	complexWords := 0
	for i, w := range words {
		if a.isComplexGFI(w, tags[i]) {
			complexWords++
		}
	}

	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	complexFraction := float64(complexWords) / float64(len(words))

	return (avgSentenceLen + complexFraction) * 0.4
}

func (a *Analyzer) isComplexGFI(word, tag string) bool {
	syl := a.SyllableCount(word)
	if syl < 3 || strings.Contains(tag, "NNP") || strings.Contains(word, "-") {
		return false
	}
	if syl == 3 && strings.Contains(tag, "VB") &&
		(strings.HasSuffix(word, "es") || strings.HasSuffix(word, "ed") || strings.HasSuffix(word, "ing")) {
		return false
	}
	return true
}

// SMOG computes the SMOG grade over a fixed sample of sentences: the first
// ten, a middle window, and the last ten. Texts with at least ten sentences
// give meaningful samples; shorter texts degrade but are not rejected.
func (a *Analyzer) SMOG(text string) int {
	sentences := a.SentenceList(text)
	sample := smogSample(sentences)

	difficult := 0
	for _, w := range a.WordList(sample) {
		if a.SyllableCount(w) >= 3 {
			difficult++
		}
	}

	return int(math.Round(math.Sqrt(float64(difficult)))) + 3
}

// smogSample builds the SMOG sentence sample. The middle window is
// sentences[floor(n/2-5):roundToEven(n/2-5)], which is empty for even totals
// and at most one sentence for odd totals; the groups are joined with no
// separator between them.
func smogSample(sentences []string) string {
	n := len(sentences)

	start := sliceWindow(sentences, 0, 10)
	midLo := int(math.Floor(float64(n)/2 - 5))
	midHi := int(math.RoundToEven(float64(n)/2 - 5))
	middle := sliceWindow(sentences, midLo, midHi)
	end := sliceWindow(sentences, n-10, n)

	return strings.Join(start, " ") + strings.Join(middle, " ") + strings.Join(end, " ")
}

// sliceWindow clamps [lo, hi) to valid bounds, returning nil for inverted or
// out-of-range windows.
func sliceWindow(s []string, lo, hi int) []string {
	if lo < 0 {
		lo = 0
	}
	if hi > len(s) {
		hi = len(s)
	}
	if lo >= hi {
		return nil
	}
	return s[lo:hi]
}

// ComplexWordCount reports the number of words with three or more syllables.
// Unlike the GFI rule it applies no tag or suffix exceptions.
func (a *Analyzer) ComplexWordCount(text string) int {
	count := 0
	for _, w := range a.WordList(text) {
		if a.SyllableCount(w) >= 3 {
			count++
		}
	}
	return count
}
