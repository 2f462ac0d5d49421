package emovec

import "math"

// A Token represents an individual token of text such as a word or punctuation
// symbol.
type Token struct {
	Text     string // The token's actual content.
	Sentence int    // Index of the sentence the token came from
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// Language represents supported languages
type Language string

const (
	English Language = "en"
)

// Emotion categories produced by the emotion lexicon.
const (
	Fear         = "fear"
	Anger        = "anger"
	Anticipation = "anticipation"
	Trust        = "trust"
	Surprise     = "surprise"
	Sadness      = "sadness"
	Disgust      = "disgust"
	Joy          = "joy"
	PositiveAff  = "positive"
	NegativeAff  = "negative"
)

// Labels is the fixed, ordered label set of an EmotionVector.
var Labels = []string{
	"subjectivity", "polarity", "fear", "anger", "anticip",
	"trust", "surprise", "sadness", "disgust", "joy",
}

// EmotionVector is the 10-dimensional result of an analysis. Fields are
// declared in label order so the JSON object keeps that order.
type EmotionVector struct {
	Subjectivity float64 `json:"subjectivity"` // 0.0 (objective) to 1.0 (subjective)
	Polarity     float64 `json:"polarity"`     // -1.0 (negative) to 1.0 (positive)
	Fear         float64 `json:"fear"`
	Anger        float64 `json:"anger"`
	Anticip      float64 `json:"anticip"`
	Trust        float64 `json:"trust"`
	Surprise     float64 `json:"surprise"`
	Sadness      float64 `json:"sadness"`
	Disgust      float64 `json:"disgust"`
	Joy          float64 `json:"joy"`
}

// NewEmotionVector zips the sentiment scores and affect frequencies into a
// vector. Categories missing from freqs are 0.
func NewEmotionVector(sentiment SentimentScore, freqs AffectFrequencies) EmotionVector {
	return EmotionVector{
		Subjectivity: sentiment.Subjectivity,
		Polarity:     sentiment.Polarity,
		Fear:         freqs[Fear],
		Anger:        freqs[Anger],
		Anticip:      freqs[Anticipation],
		Trust:        freqs[Trust],
		Surprise:     freqs[Surprise],
		Sadness:      freqs[Sadness],
		Disgust:      freqs[Disgust],
		Joy:          freqs[Joy],
	}
}

// Values returns the vector's values in label order.
func (v EmotionVector) Values() []float64 {
	return []float64{
		v.Subjectivity, v.Polarity, v.Fear, v.Anger, v.Anticip,
		v.Trust, v.Surprise, v.Sadness, v.Disgust, v.Joy,
	}
}

// Get returns the value stored under label.
func (v EmotionVector) Get(label string) (float64, bool) {
	for i, l := range Labels {
		if l == label {
			return v.Values()[i], true
		}
	}
	return 0, false
}

// Map returns the vector as a label to value map.
func (v EmotionVector) Map() map[string]float64 {
	values := v.Values()
	m := make(map[string]float64, len(Labels))
	for i, l := range Labels {
		m[l] = values[i]
	}
	return m
}

// IsZero reports whether every dimension is 0.
func (v EmotionVector) IsZero() bool {
	for _, x := range v.Values() {
		if x != 0 {
			return false
		}
	}
	return true
}

// SentimentScore represents the sentiment analysis results
type SentimentScore struct {
	Polarity     float64 // -1.0 (negative) to 1.0 (positive)
	Subjectivity float64 // 0.0 (objective) to 1.0 (subjective)

	// Assessments lists the lexicon hits that produced the score.
	Assessments []Assessment
}

// Assessment is a single scored lexicon hit, possibly modified by a
// preceding intensifier or negation.
type Assessment struct {
	Words        []string
	Polarity     float64
	Subjectivity float64
	Negated      bool
}

// AffectFrequencies maps an emotion category to its share of all lexicon
// matches.
type AffectFrequencies map[string]float64

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
