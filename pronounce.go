package readability

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	_ "embed"
)

// PronunciationSource maps a word to its known pronunciations, each an
// ordered sequence of phoneme symbols. A phoneme whose final character is a
// digit carries a stress marker and counts as one syllable nucleus. Lookup
// is case-insensitive; unknown words yield nil.
type PronunciationSource interface {
	Pronunciations(word string) [][]string
}

// Dict is an in-memory pronunciation dictionary in CMUdict format. It is
// immutable after parsing and safe for concurrent use.
type Dict struct {
	entries map[string][][]string
}

//go:embed cmudict_builtin.txt
var builtinDictData string

var (
	builtinOnce sync.Once
	builtin     *Dict
)

// BuiltinDict returns the embedded dictionary of common English words. It is
// parsed once per process.
func BuiltinDict() *Dict {
	builtinOnce.Do(func() {
		d, err := ParseDict(strings.NewReader(builtinDictData))
		if err != nil {
			panic("readability: built-in dictionary is malformed: " + err.Error())
		}
		builtin = d
	})
	return builtin
}

// LoadDict reads a CMUdict-format dictionary file from disk.
func LoadDict(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d, err := ParseDict(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// ParseDict parses CMUdict-format lines: a word, whitespace, then phoneme
// symbols. Alternate pronunciations use a "(n)" suffix on the word. Lines
// starting with ";;;" are comments.
func ParseDict(r io.Reader) (*Dict, error) {
	entries := make(map[string][][]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: no phonemes", lineNo)
		}
		word := strings.ToLower(fields[0])
		if i := strings.IndexByte(word, '('); i > 0 {
			word = word[:i]
		}
		entries[word] = append(entries[word], fields[1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Dict{entries: entries}, nil
}

// Pronunciations implements PronunciationSource.
func (d *Dict) Pronunciations(word string) [][]string {
	return d.entries[strings.ToLower(word)]
}

// Len reports the number of distinct words in the dictionary.
func (d *Dict) Len() int {
	return len(d.entries)
}
