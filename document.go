package emovec

import (
	"strings"
	"time"
	"unicode/utf8"
)

// A Document represents one analyzed body of text and every intermediate
// result of its analysis.
type Document struct {
	Text     string
	Cleaned  string
	Metadata DocumentMetadata

	words     []string
	sentiment SentimentScore
	emotions  AffectFrequencies
	vector    EmotionVector
}

// DocumentMetadata describes how a Document was produced.
type DocumentMetadata struct {
	ProcessedAt      time.Time
	ProcessingTimeMs int64
	Language         Language
	WordCount        int
	MatchedEmotions  bool
}

// Words returns the lemmatized content words that survived cleaning.
func (doc *Document) Words() []string {
	return doc.words
}

// Sentiment returns `doc`'s sentiment score.
func (doc *Document) Sentiment() SentimentScore {
	return doc.sentiment
}

// Emotions returns `doc`'s affect frequencies.
func (doc *Document) Emotions() AffectFrequencies {
	return doc.emotions
}

// Vector returns `doc`'s emotion vector.
func (doc *Document) Vector() EmotionVector {
	return doc.vector
}

// NewDocument runs the full pipeline over text.
//
// For example,
//
//	doc, err := analyzer.NewDocument("...")
//	fmt.Println(doc.Vector().Joy)
func (a *Analyzer) NewDocument(text string) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}

	startTime := time.Now()

	doc := Document{
		Text: text,
		Metadata: DocumentMetadata{
			ProcessedAt: startTime,
			Language:    English,
		},
	}

	// Normalization
	doc.words = a.normalizer.Words(text)
	doc.Cleaned = strings.Join(doc.words, " ")
	doc.Metadata.WordCount = len(doc.words)

	// Feature extraction
	doc.sentiment = a.sentiment.Score(doc.Cleaned)
	doc.emotions = a.emotions.Frequencies(doc.Cleaned)
	for _, f := range doc.emotions {
		if f > 0 {
			doc.Metadata.MatchedEmotions = true
			break
		}
	}

	doc.vector = NewEmotionVector(doc.sentiment, doc.emotions)

	doc.Metadata.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return &doc, nil
}
