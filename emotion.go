package emovec

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

// EmotionScorer turns cleaned text into affect frequencies.
type EmotionScorer struct {
	lexicon *EmotionLexicon
}

// NewEmotionScorer creates a scorer backed by lexicon.
func NewEmotionScorer(lexicon *EmotionLexicon) *EmotionScorer {
	return &EmotionScorer{lexicon: lexicon}
}

// Frequencies counts the category associations of every word in text and
// divides each count by the total over all categories, positive and
// negative included. Only the eight emotion categories are returned; all
// are 0 when no word matched.
func (es *EmotionScorer) Frequencies(text string) AffectFrequencies {
	counts := make([]float64, len(emotionCategories))
	for _, w := range strings.Fields(text) {
		for _, c := range es.lexicon.words[w] {
			counts[c]++
		}
	}

	if total := floats.Sum(counts); total > 0 {
		floats.Scale(1/total, counts)
	}

	freqs := make(AffectFrequencies, len(reportedCategories))
	for i, c := range reportedCategories {
		freqs[c] = counts[i]
	}
	return freqs
}
