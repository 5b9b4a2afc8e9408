package readability

import (
	"strings"
	"unicode"
)

// POSTagger assigns one part-of-speech tag per word, positionally aligned
// with its input. Tags follow the Penn Treebank convention as far as the GFI
// complex-word rule needs: "NNP" marks proper nouns and any "VB"-prefixed
// tag marks a verb form.
type POSTagger interface {
	Tag(words []string) []string
}

type heuristicTagger struct{}

// HeuristicTagger returns the default tagger: capitalized words that are not
// sentence-initial tag as NNP, common verb suffixes tag as VBG/VBD/VBZ,
// numbers as CD, everything else as NN. It is deliberately coarse; inject a
// real tagger via Options for better GFI fidelity.
func HeuristicTagger() POSTagger {
	return heuristicTagger{}
}

func (heuristicTagger) Tag(words []string) []string {
	tags := make([]string, len(words))
	for i, w := range words {
		tags[i] = tagWord(w, i == 0)
	}
	return tags
}

func tagWord(word string, sentenceInitial bool) string {
	if word == "" {
		return "NN"
	}

	lower := strings.ToLower(word)
	switch {
	case isNumberToken(word):
		return "CD"
	case isCapitalized(word) && !sentenceInitial:
		return "NNP"
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return "VBD"
	case strings.HasSuffix(lower, "es") && len(lower) > 3:
		return "VBZ"
	default:
		return "NN"
	}
}

func isCapitalized(word string) bool {
	for i, r := range word {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func isNumberToken(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
