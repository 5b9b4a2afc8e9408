package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	nonHyphenAlphaRE = regexp.MustCompile(`[^-a-zA-Z]`)
	hyphenCompoundRE = regexp.MustCompile(`[a-zA-Z]+-[a-zA-Z]+`)
	trailingHyphenRE = regexp.MustCompile(`[a-zA-Z]+-$`)
)

// SyllableCount estimates the number of syllables in a single word.
//
// Purely alphabetic words are looked up in the pronunciation dictionary and
// syllables are counted from stress-marked phonemes; when pronunciations
// disagree the mode of the per-variant counts wins, falling back to the
// rounded mean when no unique mode exists. Words missing from the dictionary
// use a vowel-cluster heuristic. Hyphenated compounds are split and summed
// recursively. Tokens with neither letters nor hyphens count as one unit.
func (a *Analyzer) SyllableCount(word string) int {
	if isAlpha(word) {
		if prons := a.dict.Pronunciations(word); len(prons) > 0 {
			// Irregular cases where the dictionary disagrees with
			// common usage.
			switch word {
			case "US":
				return 2
			case "us":
				return 1
			case "separate":
				return 2
			}
			counts := make([]int, len(prons))
			for i, pron := range prons {
				counts[i] = stressedPhonemes(pron)
			}
			if len(counts) == 1 {
				return counts[0]
			}
			return modeOrMean(counts)
		}
		// Named entities absent from the dictionary.
		switch strings.ToLower(word) {
		case "facebook":
			return 2
		case "thefacebook":
			return 3
		case "tumblr":
			return 2
		}
		return heuristicSyllables(word)
	}

	if strings.Contains(word, "-") {
		switch {
		case nonHyphenAlphaRE.MatchString(word):
			// Anything besides letters and hyphens is opaque.
			return 1
		case hyphenCompoundRE.MatchString(word):
			total := 0
			for _, part := range strings.Split(word, "-") {
				total += a.SyllableCount(part)
			}
			return total
		case trailingHyphenRE.MatchString(word):
			return a.SyllableCount(strings.Trim(word, "-"))
		default:
			return 1
		}
	}

	return 1
}

// stressedPhonemes counts the phonemes in one pronunciation whose final
// character is a stress digit, i.e. the vowel nuclei.
func stressedPhonemes(pron []string) int {
	n := 0
	for _, p := range pron {
		if p == "" {
			continue
		}
		last := p[len(p)-1]
		if last >= '0' && last <= '9' {
			n++
		}
	}
	return n
}

// modeOrMean returns the statistical mode of counts, or the rounded mean
// when no unique mode exists. Rounding is half-to-even.
func modeOrMean(counts []int) int {
	freq := make(map[int]int, len(counts))
	for _, c := range counts {
		freq[c]++
	}

	best, bestN, tie := 0, 0, false
	for v, n := range freq {
		switch {
		case n > bestN:
			best, bestN, tie = v, n, false
		case n == bestN:
			tie = true
		}
	}
	if !tie {
		return best
	}

	sum := 0
	for _, c := range counts {
		sum += c
	}
	return int(math.RoundToEven(float64(sum) / float64(len(counts))))
}

// heuristicSyllables estimates syllables for a word absent from the
// dictionary by counting transitions into vowel runs, then applying suffix
// adjustments. The adjustments stack in order and are deliberately not
// mutually exclusive.
func heuristicSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for i, r := range word {
		v := isVowel(r)
		if v && (i == 0 || !prevVowel) {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") {
		count--
	}
	if strings.HasSuffix(word, "le") {
		count++
	}
	if strings.HasSuffix(word, "sm") {
		count++
	}
	if strings.HasSuffix(word, "thm") {
		count++
	}
	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
