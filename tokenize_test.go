package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordListRetainsDecimals(t *testing.T) {
	assert.Equal(t, []string{"It", "costs", "3.5", "dollars"}, WordList("It costs 3.5 dollars."))
}

func TestWordListRetainsContractions(t *testing.T) {
	assert.Equal(t, []string{"don't", "stop"}, WordList("don't stop"))
}

func TestWordListRetainsURLs(t *testing.T) {
	assert.Equal(t, []string{"See", "example.com/page", "for", "info"},
		WordList("See example.com/page for info."))
	assert.Contains(t, WordList("Visit www.example.com today."), "www.example.com")
}

func TestWordListRetainsHyphenatedWords(t *testing.T) {
	assert.Equal(t, []string{"a", "well-known", "fix"}, WordList("a well-known fix"))
}

func TestWordListExcludesBarePunctuation(t *testing.T) {
	assert.Equal(t, []string{"Hello", "world"}, WordList("Hello , world !"))
	assert.Empty(t, WordList("... !! ??"))
}

func TestKeepWordPredicates(t *testing.T) {
	kept := []string{"plain", "Word7", "3.5", "don't", "example.com/page", "well-known"}
	for _, tok := range kept {
		assert.True(t, keepWord(tok), "token %q", tok)
	}
	dropped := []string{"", "...", "--", "'", "i.e"}
	for _, tok := range dropped {
		assert.False(t, keepWord(tok), "token %q", tok)
	}
}

func TestSentenceListFiltersNumberedMarkers(t *testing.T) {
	got := SentenceList("1. Introduction. This is a test.")
	assert.Len(t, got, 2)
	assert.NotContains(t, got, "1.")
}

func TestSentenceListAbbreviations(t *testing.T) {
	assert.Equal(t, 1, SentenceCount("It works well, e.g. it runs fast."))
	assert.Equal(t, 1, SentenceCount("Some firms, i.e. the large ones, paid more."))
	assert.Equal(t, 1, SentenceCount("The firm, Acme Inc. by name, was large."))
	assert.Equal(t, 2, SentenceCount("Dr. Smith arrived. He sat down."))
}

func TestSentenceListBasicSplit(t *testing.T) {
	got := SentenceList("The cat sat. The dog ran! Did the bird fly?")
	assert.Equal(t, []string{"The cat sat.", "The dog ran!", "Did the bird fly?"}, got)
}

func TestSentenceListKeepsURLsIntact(t *testing.T) {
	assert.Equal(t, 1, SentenceCount("Read the docs at example.com/page before starting."))
}

func TestSentenceListExtraAbbreviations(t *testing.T) {
	a := New(Options{ExtraAbbreviations: []string{"approx", "ca"}})
	assert.Equal(t, 1, a.SentenceCount("It weighs ca. 40 tons, approx. a blue whale."))
}

func TestWordListEmpty(t *testing.T) {
	assert.Empty(t, WordList(""))
	assert.Empty(t, SentenceList(""))
}
