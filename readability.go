package readability

import (
	"github.com/rs/zerolog/log"
)

// Options configures an Analyzer.
type Options struct {
	// Dict supplies pronunciations for dictionary-backed syllable counts.
	// Default: the built-in dictionary.
	Dict PronunciationSource

	// Tagger supplies part-of-speech tags for the GFI complex-word rule.
	// Default: a heuristic suffix tagger.
	Tagger POSTagger

	// ExtraAbbreviations extends the sentence splitter's set of
	// non-terminating abbreviations (lowercase, without the trailing period).
	ExtraAbbreviations []string
}

// Report contains every metric and supporting count for one text.
type Report struct {
	// FRES is the Flesch Reading Ease Score.
	FRES float64 `json:"fres"`

	// ARI is the Automated Readability Index.
	ARI float64 `json:"ari"`

	// GFI is the Gunning Fog Index.
	GFI float64 `json:"gfi"`

	// SMOG is the Simple Measure of Gobbledygook grade.
	SMOG int `json:"smog"`

	Words        int `json:"words"`
	Sentences    int `json:"sentences"`
	Syllables    int `json:"syllables"`
	ComplexWords int `json:"complex_words"`
	Characters   int `json:"characters"`
}

// Analyzer computes readability metrics over text. It holds the injected
// pronunciation dictionary, POS tagger, and sentence-splitter abbreviation
// set; all fields are read-only after New returns.
type Analyzer struct {
	dict    PronunciationSource
	tagger  POSTagger
	abbrevs map[string]struct{}
}

// New builds an Analyzer. Zero-value Options select the built-in dictionary,
// the heuristic tagger, and the default abbreviation set.
func New(opts Options) *Analyzer {
	dict := opts.Dict
	if dict == nil {
		dict = BuiltinDict()
	}
	tagger := opts.Tagger
	if tagger == nil {
		tagger = HeuristicTagger()
	}

	abbrevs := make(map[string]struct{}, len(defaultAbbreviations)+len(opts.ExtraAbbreviations))
	for _, a := range defaultAbbreviations {
		abbrevs[a] = struct{}{}
	}
	for _, a := range opts.ExtraAbbreviations {
		abbrevs[a] = struct{}{}
	}

	return &Analyzer{dict: dict, tagger: tagger, abbrevs: abbrevs}
}

// Analyze computes every metric and count in one call. Metric scores are
// reported only when the text yields at least one word and one sentence; the
// counts are always filled in.
func (a *Analyzer) Analyze(text string) Report {
	words := a.WordList(text)
	sentences := a.SentenceList(text)

	r := Report{
		Words:     len(words),
		Sentences: len(sentences),
	}
	for _, w := range words {
		syl := a.SyllableCount(w)
		r.Syllables += syl
		r.Characters += len(w)
		if syl >= 3 {
			r.ComplexWords++
		}
	}

	if len(words) > 0 && len(sentences) > 0 {
		r.FRES = a.FRES(text)
		r.ARI = a.ARI(text)
		r.GFI = a.GFI(text)
		r.SMOG = a.SMOG(text)
	}

	log.Debug().
		Int("words", r.Words).
		Int("sentences", r.Sentences).
		Int("syllables", r.Syllables).
		Float64("fres", r.FRES).
		Float64("ari", r.ARI).
		Float64("gfi", r.GFI).
		Int("smog", r.SMOG).
		Msg("readability analysis complete")

	return r
}

var std = New(Options{})

// SyllableCount estimates syllables for a single word using the default
// analyzer.
func SyllableCount(word string) int { return std.SyllableCount(word) }

// WordList tokenizes text into words using the default analyzer.
func WordList(text string) []string { return std.WordList(text) }

// SentenceList splits text into sentences using the default analyzer.
func SentenceList(text string) []string { return std.SentenceList(text) }

// FRES computes the Flesch Reading Ease Score using the default analyzer.
func FRES(text string) float64 { return std.FRES(text) }

// ARI computes the Automated Readability Index using the default analyzer.
func ARI(text string) float64 { return std.ARI(text) }

// GFI computes the Gunning Fog Index using the default analyzer.
func GFI(text string) float64 { return std.GFI(text) }

// SMOG computes the SMOG grade using the default analyzer.
func SMOG(text string) int { return std.SMOG(text) }

// WordCount reports the number of words using the default analyzer.
func WordCount(text string) int { return std.WordCount(text) }

// SentenceCount reports the number of sentences using the default analyzer.
func SentenceCount(text string) int { return std.SentenceCount(text) }

// ComplexWordCount reports the number of words with three or more syllables
// using the default analyzer.
func ComplexWordCount(text string) int { return std.ComplexWordCount(text) }

// Analyze computes a full Report using the default analyzer.
func Analyze(text string) Report { return std.Analyze(text) }
