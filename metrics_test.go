package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// goldenText is built entirely from dictionary words: 15 words across 3
// sentences, 46 token characters, 16 syllables ("away" has two, the rest
// one), and no complex words. The pinned scores below follow directly.
const goldenText = "The cat sat on the mat. The dog ate a bone. The bird flew away."

func TestGoldenCounts(t *testing.T) {
	assert.Equal(t, 15, WordCount(goldenText))
	assert.Equal(t, 3, SentenceCount(goldenText))
	assert.Equal(t, 0, ComplexWordCount(goldenText))
}

func TestGoldenFRES(t *testing.T) {
	// 206.835 - 1.015*(15/3) - 84.6*(16/15)
	assert.InDelta(t, 111.52, FRES(goldenText), 1e-9)
}

func TestGoldenARI(t *testing.T) {
	// 4.71*(46/15) + 0.5*(15/3) - 21.43
	assert.InDelta(t, -4.486, ARI(goldenText), 1e-9)
}

func TestGoldenGFI(t *testing.T) {
	// (15/3 + 0/15) * 0.4
	assert.InDelta(t, 2.0, GFI(goldenText), 1e-9)
}

func TestGoldenSMOG(t *testing.T) {
	// No difficult words in the sample: round(sqrt(0)) + 3.
	assert.Equal(t, 3, SMOG(goldenText))
}

func TestFRESMonotonicity(t *testing.T) {
	easy := FRES("The cat sat on the mat.")
	hard := FRES("Nevertheless, extraordinarily complicated considerations invariably necessitate additional deliberation.")
	assert.Greater(t, easy, hard)
}

func TestGFIExcludesProperNouns(t *testing.T) {
	// "Abernathy" is capitalized mid-sentence (tagged NNP) and excluded;
	// "yesterday" has three syllables and counts.
	got := GFI("We saw Abernathy yesterday.")
	assert.InDelta(t, (4.0+1.0/4.0)*0.4, got, 1e-9)
}

func TestGFIExcludesInflectedVerbs(t *testing.T) {
	// "unbending" has three syllables but is a verb form ending in "ing".
	assert.InDelta(t, (4.0+0.0)*0.4, GFI("They kept unbending rules."), 1e-9)
	// The plain complex-word count applies no such exception.
	assert.Equal(t, 1, ComplexWordCount("They kept unbending rules."))
}

func TestGFIExcludesHyphenatedWords(t *testing.T) {
	// "twenty-seven" has four syllables but contains a hyphen.
	assert.InDelta(t, (4.0+0.0)*0.4, GFI("We counted twenty-seven birds."), 1e-9)
}

func numberedSentences(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = "Sentence number " + strings.Repeat("x", i+1) + "."
	}
	return s
}

func TestSMOGSampleEvenTotal(t *testing.T) {
	s := numberedSentences(20)
	// floor(20/2-5) == round(20/2-5) == 5: the middle window is empty.
	want := strings.Join(s[0:10], " ") + strings.Join(s[10:20], " ")
	assert.Equal(t, want, smogSample(s))
}

func TestSMOGSampleOddTotal(t *testing.T) {
	s := numberedSentences(21)
	// 21/2-5 = 5.5: floor 5, round-half-even 6, one middle sentence.
	want := strings.Join(s[0:10], " ") + s[5] + strings.Join(s[11:21], " ")
	assert.Equal(t, want, smogSample(s))
}

func TestSMOGSampleShortText(t *testing.T) {
	s := numberedSentences(3)
	// Start and end windows both cover everything; the middle is empty.
	want := strings.Join(s, " ") + strings.Join(s, " ")
	assert.Equal(t, want, smogSample(s))
}

func TestSMOGDifficultWordSampling(t *testing.T) {
	// Twelve sentences, each with one three-syllable word; the sample holds
	// the first ten and last ten, overlapping in the middle eight.
	sentences := make([]string, 12)
	for i := range sentences {
		sentences[i] = "The banana was good."
	}
	text := strings.Join(sentences, " ")
	// Sampled difficult words: 10 + 10 = 20, round(sqrt(20)) = 4.
	assert.Equal(t, 7, SMOG(text))
}
