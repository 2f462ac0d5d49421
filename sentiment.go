package emovec

import (
	"fmt"
	"strings"
)

// A SentimentScorer scores the polarity and subjectivity of cleaned text.
type SentimentScorer interface {
	Score(text string) SentimentScore
}

// Sentiment engines selectable by name.
const (
	SentimentEnginePattern = "pattern"
	SentimentEngineVader   = "vader"
)

// NewSentimentScorer builds the named engine. lexiconPath optionally points
// to a lexicon file for the pattern engine, see LoadSentimentLexiconWithExternal.
func NewSentimentScorer(engine, lexiconPath string) (SentimentScorer, error) {
	switch engine {
	case "", SentimentEnginePattern:
		lexicon, err := LoadSentimentLexiconWithExternal(English, lexiconPath)
		if err != nil {
			return nil, err
		}
		return NewSentimentAnalyzer(lexicon, DefaultSentimentConfig()), nil
	case SentimentEngineVader:
		return NewVaderScorer(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment engine %q", engine)
	}
}

// SentimentAnalyzer performs lexicon-based sentiment analysis. Every known
// word yields one assessment; adverbs scale the word after them and
// negations soften and flip it.
type SentimentAnalyzer struct {
	lexicon   *SentimentLexicon
	tokenizer Tokenizer
	config    SentimentConfig
}

// SentimentConfig configures sentiment analysis
type SentimentConfig struct {
	NegationWeight   float64 // Applied to the polarity of a negated assessment
	ExclamationBoost float64 // Applied to the polarity before a "!"
	NegationReach    int     // Longest word a negation skips over
	ModifierReach    int     // Longest word a modifier skips over
}

// DefaultSentimentConfig returns standard configuration
func DefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		NegationWeight:   -0.5,
		ExclamationBoost: 1.25,
		NegationReach:    1,
		ModifierReach:    2,
	}
}

// NewSentimentAnalyzer creates a sentiment analyzer
func NewSentimentAnalyzer(lexicon *SentimentLexicon, config SentimentConfig) *SentimentAnalyzer {
	return &SentimentAnalyzer{
		lexicon:   lexicon,
		tokenizer: NewIterTokenizer(),
		config:    config,
	}
}

// assessment is an Assessment still open to modification by the words
// that follow it.
type assessment struct {
	words        []string
	polarity     float64
	subjectivity float64
	intensity    float64
	negated      bool
}

// Score returns the mean polarity and subjectivity of the assessments in
// text, or zero for both when no word is known.
func (sa *SentimentAnalyzer) Score(text string) SentimentScore {
	var words []string
	for _, tok := range sa.tokenizer.Tokenize(text) {
		words = append(words, strings.ToLower(tok.Text))
	}

	found := sa.assess(words)
	if len(found) == 0 {
		return SentimentScore{}
	}

	var (
		score        SentimentScore
		polarity     float64
		subjectivity float64
	)
	for _, a := range found {
		p := a.polarity
		if a.negated {
			p *= sa.config.NegationWeight
		}
		polarity += p
		subjectivity += a.subjectivity
		score.Assessments = append(score.Assessments, Assessment{
			Words:        a.words,
			Polarity:     p,
			Subjectivity: a.subjectivity,
			Negated:      a.negated,
		})
	}

	n := float64(len(found))
	score.Polarity = clamp(polarity/n, -1, 1)
	score.Subjectivity = clamp(subjectivity/n, 0, 1)
	return score
}

// assess walks words left to right. modifier holds the adverb that will
// scale the next known word and negation the word that will flip it.
func (sa *SentimentAnalyzer) assess(words []string) []*assessment {
	var (
		found    []*assessment
		modifier string
		negation string
	)

	for _, w := range words {
		entry, known := sa.lexicon.Get(w)
		if known {
			if modifier == "" {
				found = append(found, &assessment{
					words:        []string{w},
					polarity:     entry.Polarity,
					subjectivity: entry.Subjectivity,
					intensity:    entry.Intensity,
				})
			} else {
				last := found[len(found)-1]
				last.words = append(last.words, w)
				last.polarity = clamp(entry.Polarity*last.intensity, -1, 1)
				last.subjectivity = clamp(entry.Subjectivity*last.intensity, 0, 1)
				last.intensity = entry.Intensity
			}
			if negation != "" {
				last := found[len(found)-1]
				last.words = append([]string{negation}, last.words...)
				last.negated = true
			}

			modifier, negation = "", ""
			if entry.Modifier {
				modifier = w
			}
			if sa.lexicon.IsNegation(w) {
				negation = w
			}
			continue
		}

		if sa.lexicon.IsNegation(w) {
			negation = w
		} else if negation != "" && len(strings.Trim(w, "'")) > sa.config.NegationReach {
			negation = ""
		}

		if negation != "" && modifier != "" {
			// "really not good": the negation attaches to the modifier.
			last := found[len(found)-1]
			last.words = append(last.words, negation)
			last.negated = true
			negation = ""
		} else if modifier != "" && len(w) > sa.config.ModifierReach {
			modifier = ""
		}

		if w == "!" && len(found) > 0 {
			last := found[len(found)-1]
			last.words = append(last.words, w)
			last.polarity = clamp(last.polarity*sa.config.ExclamationBoost, -1, 1)
		}
	}

	return found
}
