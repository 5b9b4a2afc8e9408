package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicTagger(t *testing.T) {
	words := []string{"We", "saw", "Abernathy", "running", "jumped", "washes", "3.5"}
	tags := HeuristicTagger().Tag(words)

	assert.Equal(t, []string{"NN", "NN", "NNP", "VBG", "VBD", "VBZ", "CD"}, tags)
}

func TestHeuristicTaggerSentenceInitial(t *testing.T) {
	// A capitalized first word is not assumed to be a proper noun.
	tags := HeuristicTagger().Tag([]string{"Reading", "is", "fun"})
	assert.Equal(t, "VBG", tags[0])
}
