package emovec

import (
	"errors"
	"fmt"
)

var (
	// ErrAnalysis wraps every failure inside the analysis pipeline.
	ErrAnalysis = errors.New("analysis failed")

	// ErrInvalidEncoding is returned for text that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")
)

// AnalyzerOpts controls how an Analyzer is built.
type AnalyzerOpts struct {
	StopWords        string // Stop-word set name, see NewStopWords
	SentimentEngine  string // Sentiment engine name, see NewSentimentScorer
	SentimentLexicon string // Optional pattern XML or JSON lexicon for the pattern engine
	EmotionLexicon   string // Optional NRC word-level lexicon file
	StripMarkdown    bool   // Flatten markdown before cleaning
}

// An AnalyzerOpt represents a setting that changes how an Analyzer is built.
//
// For example, it might select the VADER sentiment engine:
//
//	analyzer, err := emovec.NewAnalyzer(emovec.UsingSentimentEngine("vader"))
type AnalyzerOpt func(opts *AnalyzerOpts)

// UsingStopWords selects the stop-word set.
func UsingStopWords(name string) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.StopWords = name
	}
}

// UsingSentimentEngine selects the sentiment engine.
func UsingSentimentEngine(name string) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.SentimentEngine = name
	}
}

// WithSentimentLexicon loads a lexicon file into the pattern engine. A
// pattern en-sentiment.xml file replaces the built-in words and a JSON file
// is merged into them.
func WithSentimentLexicon(path string) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.SentimentLexicon = path
	}
}

// WithEmotionLexicon replaces the embedded emotion lexicon with an NRC
// word-level file.
func WithEmotionLexicon(path string) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.EmotionLexicon = path
	}
}

// WithMarkdown can enable or disable (the default) markdown flattening.
func WithMarkdown(strip bool) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.StripMarkdown = strip
	}
}

var defaultAnalyzerOpts = AnalyzerOpts{
	StopWords:       StopWordsNLTK,
	SentimentEngine: SentimentEnginePattern,
}

// Analyzer converts text into emotion vectors. It is built once and is
// safe for concurrent use.
type Analyzer struct {
	normalizer *Normalizer
	sentiment  SentimentScorer
	emotions   *EmotionScorer
}

// NewAnalyzer loads every model and lexicon the pipeline needs.
func NewAnalyzer(opts ...AnalyzerOpt) (*Analyzer, error) {
	base := defaultAnalyzerOpts
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	stopWords, err := NewStopWords(base.StopWords)
	if err != nil {
		return nil, err
	}

	segmenter, err := NewPunktSegmenter()
	if err != nil {
		return nil, err
	}

	emotionLexicon := LoadEmotionLexicon()
	if base.EmotionLexicon != "" {
		if emotionLexicon, err = LoadEmotionLexiconFile(base.EmotionLexicon); err != nil {
			return nil, err
		}
	}

	sentiment, err := NewSentimentScorer(base.SentimentEngine, base.SentimentLexicon)
	if err != nil {
		return nil, err
	}

	dict := multiDictionary{emotionLexicon}
	if sa, ok := sentiment.(*SentimentAnalyzer); ok {
		dict = append(dict, sa.lexicon)
	}

	normalizer := NewNormalizer(
		NewIterTokenizer(UsingSegmenter(segmenter)),
		stopWords,
		NewLemmatizer(dict),
		WithMarkdownStripping(base.StripMarkdown),
	)

	return &Analyzer{
		normalizer: normalizer,
		sentiment:  sentiment,
		emotions:   NewEmotionScorer(emotionLexicon),
	}, nil
}

// Clean returns the normalized form of text that the scorers see.
func (a *Analyzer) Clean(text string) string {
	return a.normalizer.Clean(text)
}

// Analyze returns the emotion vector of text. Any failure, including a
// panic inside a scorer, is returned wrapped in ErrAnalysis.
func (a *Analyzer) Analyze(text string) (vec EmotionVector, err error) {
	defer func() {
		if r := recover(); r != nil {
			vec, err = EmotionVector{}, fmt.Errorf("%w: %v", ErrAnalysis, r)
		}
	}()

	doc, err := a.NewDocument(text)
	if err != nil {
		return EmotionVector{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}
	return doc.Vector(), nil
}
