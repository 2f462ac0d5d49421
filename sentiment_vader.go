package emovec

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// VaderScorer scores text with the VADER rule set. Polarity is the compound
// score and subjectivity the non-neutral share of the text.
type VaderScorer struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

// NewVaderScorer loads the VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements SentimentScorer.
func (v *VaderScorer) Score(text string) SentimentScore {
	if strings.TrimSpace(text) == "" {
		return SentimentScore{}
	}

	v.mu.Lock()
	scores := v.sia.PolarityScores(text)
	v.mu.Unlock()

	return SentimentScore{
		Polarity:     clamp(scores.Compound, -1, 1),
		Subjectivity: clamp(1-scores.Neutral, 0, 1),
	}
}
