package emovec

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A SentenceSegmenter splits text into sentences.
type SentenceSegmenter interface {
	Segment(text string) []Sentence
}

// punktSentenceTokenizer segments text with the pre-trained English Punkt
// model.
type punktSentenceTokenizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the English Punkt model.
func NewPunktSegmenter() (SentenceSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load punkt model: %w", err)
	}
	return &punktSentenceTokenizer{tokenizer: tokenizer}, nil
}

// Segment returns the non-blank sentences of text.
func (p *punktSentenceTokenizer) Segment(text string) []Sentence {
	var sents []Sentence
	for _, s := range p.tokenizer.Tokenize(text) {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		sents = append(sents, Sentence{Text: s.Text, Start: s.Start, End: s.End})
	}
	return sents
}

// wholeText treats the entire input as a single sentence.
type wholeText struct{}

func (wholeText) Segment(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []Sentence{{Text: text, Start: 0, End: len(text)}}
}
