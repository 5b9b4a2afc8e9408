// Package readability computes standard readability metrics for English text.
//
// It provides four metric calculators with well-known formulas:
//   - FRES: Flesch Reading Ease Score (higher = easier)
//   - ARI: Automated Readability Index (character/word/sentence ratios)
//   - GFI: Gunning Fog Index (weighted by complex words)
//   - SMOG: Simple Measure of Gobbledygook (sampled sentence windows)
//
// Syllable counts come from a pronunciation dictionary (CMUdict format) with
// a vowel-cluster heuristic fallback for unknown words. Sentence splitting is
// abbreviation-aware, and word tokenization keeps URLs, decimals,
// contractions, and hyphenated compounds as single tokens so they are not
// double-counted.
//
// Basic usage:
//
//	score := readability.FRES("The cat sat on the mat. The dog ate a bone.")
//	age := readability.ConvertFRES(score)
//
// With an explicit dictionary and a single pass over the text:
//
//	dict, err := readability.LoadDict("cmudict.dict")
//	if err != nil {
//	    return err
//	}
//	a := readability.New(readability.Options{Dict: dict})
//	report := a.Analyze(text)
//	fmt.Println(report.FRES, report.Words)
//
// All analyzers are immutable after construction and safe for concurrent use.
package readability
