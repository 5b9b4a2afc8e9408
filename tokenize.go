package readability

import (
	"regexp"
	"strings"
	"unicode"
)

// Word retention predicates. Each pattern is a named rule so the filter
// stays auditable: a token survives when it is alphanumeric, looks like a
// contraction, a URL, a decimal number, or a hyphenated word.
var (
	contractionRE = regexp.MustCompile(`'[a-zA-Z]+`)
	urlRE         = regexp.MustCompile(`[a-zA-Z]+\.[a-zA-Z]+(\.[a-zA-Z]+|/[a-zA-Z0-9]*)`)
	decimalRE     = regexp.MustCompile(`[0-9]+\.[0-9]+`)
)

// defaultAbbreviations never terminate a sentence. Multi-dot abbreviations
// are listed without their final period.
var defaultAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "prof", "rev", "hon",
	"jr", "sr", "st", "vs", "etc", "approx", "dept",
	"no", "vol", "fig", "al", "inc", "i.e", "e.g",
}

// WordList splits text into word tokens. URLs, decimals, contractions, and
// hyphenated words stay whole; bare punctuation is dropped so it cannot be
// counted as words.
func (a *Analyzer) WordList(text string) []string {
	var words []string
	for _, tok := range tokenize(text) {
		if keepWord(tok) {
			words = append(words, tok)
		}
	}
	return words
}

// WordCount reports the number of word tokens in text.
func (a *Analyzer) WordCount(text string) int {
	return len(a.WordList(text))
}

func keepWord(tok string) bool {
	switch {
	case isAlnumToken(tok):
		return true
	case contractionRE.MatchString(tok):
		return true
	case urlRE.MatchString(tok):
		return true
	case decimalRE.MatchString(tok):
		return true
	case strings.Contains(tok, "-") && containsAlnum(tok):
		return true
	}
	return false
}

// tokenize emits maximal runs of letters and digits, keeping an internal
// apostrophe, period, slash, or hyphen only when both neighbors are
// alphanumeric. Leading and trailing punctuation never joins a token.
func tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			cur = append(cur, r)
		case isConnector(r) && i > 0 && i+1 < len(runes) &&
			isWordRune(runes[i-1]) && isWordRune(runes[i+1]):
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isConnector(r rune) bool {
	switch r {
	case '\'', '.', '/', '-':
		return true
	default:
		return false
	}
}

func isAlnumToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func containsAlnum(s string) bool {
	for _, r := range s {
		if isWordRune(r) {
			return true
		}
	}
	return false
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// SentenceList splits text into sentences, honoring the abbreviation set,
// and drops segments without an alphabetic character (stray punctuation,
// numbered-list markers).
func (a *Analyzer) SentenceList(text string) []string {
	var sentences []string
	for _, seg := range a.splitSentences(text) {
		if containsAlpha(seg) {
			sentences = append(sentences, seg)
		}
	}
	return sentences
}

// SentenceCount reports the number of sentences in text.
func (a *Analyzer) SentenceCount(text string) int {
	return len(a.SentenceList(text))
}

func (a *Analyzer) splitSentences(text string) []string {
	runes := []rune(text)
	var out []string

	start := 0
	i := 0
	for i < len(runes) {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			i++
			continue
		}

		// Consume the terminator run plus any closing quotes or brackets.
		j := i + 1
		for j < len(runes) && isTerminator(runes[j]) {
			j++
		}
		for j < len(runes) && isCloser(runes[j]) {
			j++
		}

		if a.isBoundary(runes, i, j) {
			seg := strings.TrimSpace(string(runes[start:j]))
			if seg != "" {
				out = append(out, seg)
			}
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			start = j
		}
		i = j
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	default:
		return false
	}
}

// isBoundary decides whether the terminator at term (with trailing
// punctuation consumed up to after) ends a sentence.
func (a *Analyzer) isBoundary(runes []rune, term, after int) bool {
	// A sentence break needs trailing whitespace or end of text; this also
	// keeps decimals and URL paths intact.
	if after < len(runes) && !unicode.IsSpace(runes[after]) {
		return false
	}
	if runes[term] != '.' {
		return true
	}

	word := precedingWord(runes, term)
	if word != "" {
		if _, ok := a.abbrevs[word]; ok {
			return false
		}
		// A single letter before the period reads as an initial.
		if len(word) == 1 && containsAlpha(word) {
			return false
		}
	}

	// A lowercase continuation means the period did not end the sentence.
	k := after
	for k < len(runes) && unicode.IsSpace(runes[k]) {
		k++
	}
	if k < len(runes) && unicode.IsLower(runes[k]) {
		return false
	}
	return true
}

// precedingWord collects the token immediately before the terminator,
// lowercased, keeping internal periods so "e.g." and "i.e." resolve against
// the abbreviation set.
func precedingWord(runes []rune, term int) string {
	end := term
	startIdx := end
	for startIdx > 0 {
		r := runes[startIdx-1]
		if isWordRune(r) || r == '.' || r == '\'' {
			startIdx--
			continue
		}
		break
	}
	word := strings.ToLower(string(runes[startIdx:end]))
	return strings.Trim(word, ".")
}
