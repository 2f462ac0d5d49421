package emovec

import (
	_ "embed"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// corePatternLexicon holds the built-in English adjectives and adverbs in
// the pattern en-sentiment.xml format.
//
//go:embed data/en-sentiment.xml
var corePatternLexicon string

// SentimentLexicon maps words to their polarity, subjectivity and intensity.
// It is built once and only read afterwards.
type SentimentLexicon struct {
	words     map[string]LexiconEntry
	negations map[string]bool
}

// LexiconEntry represents a word's sentiment information
type LexiconEntry struct {
	Polarity     float64 // -1 to 1
	Subjectivity float64 // 0 to 1
	Intensity    float64 // Multiplier applied to the next word when Modifier is set
	Modifier     bool    // Adverbs like "really" that scale the following word
}

// ExternalLexicon represents the JSON structure for external lexicon files
type ExternalLexicon struct {
	Languages map[string]LanguageLexicon `json:"languages"`
}

// LanguageLexicon contains all word categories for a specific language
type LanguageLexicon struct {
	Words     []WordEntry `json:"words,omitempty"`
	Negations []string    `json:"negations,omitempty"`
}

// WordEntry represents a sentiment word in JSON format
type WordEntry struct {
	Word         string  `json:"word"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Intensity    float64 `json:"intensity,omitempty"`
	Modifier     bool    `json:"modifier,omitempty"`
}

// LoadSentimentLexicon loads the built-in lexicon for lang.
func LoadSentimentLexicon(lang Language) *SentimentLexicon {
	lexicon, err := ParsePatternLexicon(strings.NewReader(corePatternLexicon))
	if err != nil {
		panic(fmt.Sprintf("embedded sentiment lexicon: %v", err))
	}
	return lexicon
}

// LoadSentimentLexiconWithExternal loads lexicon with optional external file
// support. A .xml file in the pattern en-sentiment.xml format replaces the
// built-in words; any other file is read as JSON and merged into them.
func LoadSentimentLexiconWithExternal(lang Language, externalPath string) (*SentimentLexicon, error) {
	if strings.EqualFold(filepath.Ext(externalPath), ".xml") {
		lexicon, err := LoadPatternLexiconFile(externalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load external lexicon: %w", err)
		}
		return lexicon, nil
	}

	lexicon := LoadSentimentLexicon(lang)

	// Load external lexicon if provided
	if externalPath != "" {
		if err := lexicon.loadExternalLexicon(externalPath, []Language{lang}); err != nil {
			return nil, fmt.Errorf("failed to load external lexicon: %w", err)
		}
	}

	return lexicon, nil
}

// LoadPatternLexiconFile reads a lexicon in the pattern en-sentiment.xml
// format from path.
func LoadPatternLexiconFile(path string) (*SentimentLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}
	defer f.Close()

	return ParsePatternLexicon(f)
}

type patternLexicon struct {
	XMLName xml.Name      `xml:"sentiment"`
	Words   []patternWord `xml:"word"`
}

type patternWord struct {
	Form         string `xml:"form,attr"`
	POS          string `xml:"pos,attr"`
	Polarity     string `xml:"polarity,attr"`
	Subjectivity string `xml:"subjectivity,attr"`
	Intensity    string `xml:"intensity,attr"`
}

// patternModifierTag marks the senses that scale the next word.
const patternModifierTag = "RB"

// ParsePatternLexicon reads a pattern en-sentiment.xml document. A word
// form may list several senses: their scores are averaged per part of
// speech, then across parts of speech. A form with any adverb sense is a
// modifier.
func ParsePatternLexicon(r io.Reader) (*SentimentLexicon, error) {
	var doc patternLexicon
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing lexicon XML: %w", err)
	}

	// form -> part of speech -> polarity, subjectivity and intensity columns
	senses := make(map[string]map[string]*[3][]float64)
	for _, w := range doc.Words {
		form := strings.ToLower(strings.TrimSpace(w.Form))
		if form == "" {
			continue
		}

		var psi [3]float64
		for i, attr := range []struct {
			value string
			def   float64
		}{
			{w.Polarity, 0},
			{w.Subjectivity, 0},
			{w.Intensity, 1},
		} {
			psi[i] = attr.def
			if attr.value == "" {
				continue
			}
			v, err := strconv.ParseFloat(attr.value, 64)
			if err != nil {
				return nil, fmt.Errorf("word %q: %w", w.Form, err)
			}
			psi[i] = v
		}

		byPOS, ok := senses[form]
		if !ok {
			byPOS = make(map[string]*[3][]float64)
			senses[form] = byPOS
		}
		cols, ok := byPOS[w.POS]
		if !ok {
			cols = new([3][]float64)
			byPOS[w.POS] = cols
		}
		for i := range psi {
			cols[i] = append(cols[i], psi[i])
		}
	}

	lexicon := &SentimentLexicon{
		words:     make(map[string]LexiconEntry, len(senses)),
		negations: make(map[string]bool),
	}
	for form, byPOS := range senses {
		tags := make([]string, 0, len(byPOS))
		for tag := range byPOS {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		var perPOS [3][]float64
		modifier := false
		for _, tag := range tags {
			for i, col := range byPOS[tag] {
				perPOS[i] = append(perPOS[i], stat.Mean(col, nil))
			}
			modifier = modifier || tag == patternModifierTag
		}

		lexicon.words[form] = LexiconEntry{
			Polarity:     clamp(stat.Mean(perPOS[0], nil), -1, 1),
			Subjectivity: clamp(stat.Mean(perPOS[1], nil), 0, 1),
			Intensity:    stat.Mean(perPOS[2], nil),
			Modifier:     modifier,
		}
	}
	lexicon.loadEnglishNegations()

	return lexicon, nil
}

// loadExternalLexicon reads a JSON lexicon file and merges the requested
// languages into sl.
func (sl *SentimentLexicon) loadExternalLexicon(path string, languages []Language) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading lexicon file: %w", err)
	}

	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	for _, lang := range languages {
		if langData, exists := external.Languages[languageToJSONKey(lang)]; exists {
			sl.mergeLanguageData(langData)
		}
	}

	return nil
}

// languageToJSONKey converts Language constants to JSON keys
func languageToJSONKey(lang Language) string {
	switch lang {
	case English:
		return "english"
	default:
		return strings.ToLower(string(lang))
	}
}

// mergeLanguageData merges external language data with existing lexicon
func (sl *SentimentLexicon) mergeLanguageData(data LanguageLexicon) {
	for _, entry := range data.Words {
		intensity := entry.Intensity
		if intensity == 0 {
			intensity = 1.0
		}
		sl.words[strings.ToLower(entry.Word)] = LexiconEntry{
			Polarity:     clamp(entry.Polarity, -1, 1),
			Subjectivity: clamp(entry.Subjectivity, 0, 1),
			Intensity:    intensity,
			Modifier:     entry.Modifier,
		}
	}

	for _, negation := range data.Negations {
		sl.negations[strings.ToLower(negation)] = true
	}
}

// Get returns the entry for word.
func (sl *SentimentLexicon) Get(word string) (LexiconEntry, bool) {
	entry, exists := sl.words[word]
	return entry, exists
}

// IsNegation checks if a word is a negation
func (sl *SentimentLexicon) IsNegation(word string) bool {
	return sl.negations[word]
}

// Contains implements Dictionary.
func (sl *SentimentLexicon) Contains(word string) bool {
	_, exists := sl.words[word]
	return exists
}

// Size returns the number of words in the lexicon
func (sl *SentimentLexicon) Size() int {
	return len(sl.words)
}

func (sl *SentimentLexicon) loadEnglishNegations() {
	for _, w := range []string{"not", "n't", "never", "no"} {
		sl.negations[w] = true
	}
}
