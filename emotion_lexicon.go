package emovec

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// coreEmotionLexicon is a curated subset of the NRC word-emotion
// association lexicon in its word-level file format. Only associated rows
// are listed.
//
//go:embed data/nrc_core.txt
var coreEmotionLexicon string

// emotionCategories are every category an emotion lexicon may assign.
var emotionCategories = []string{
	Fear, Anger, Anticipation, Trust, Surprise,
	Sadness, Disgust, Joy, PositiveAff, NegativeAff,
}

// reportedCategories are the categories that make it into a vector.
var reportedCategories = emotionCategories[:8]

// EmotionLexicon maps words to the emotion categories they are associated
// with.
type EmotionLexicon struct {
	words map[string][]int
}

// LoadEmotionLexicon returns the embedded core lexicon.
func LoadEmotionLexicon() *EmotionLexicon {
	lexicon, err := ParseEmotionLexicon(strings.NewReader(coreEmotionLexicon))
	if err != nil {
		panic(fmt.Sprintf("embedded emotion lexicon: %v", err))
	}
	return lexicon
}

// LoadEmotionLexiconFile reads an NRC word-level lexicon file.
func LoadEmotionLexiconFile(path string) (*EmotionLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening emotion lexicon: %w", err)
	}
	defer f.Close()

	return ParseEmotionLexicon(f)
}

// ParseEmotionLexicon reads lines of the form "word<TAB>category<TAB>0|1".
// Blank lines are skipped and associations flagged 0 are ignored.
func ParseEmotionLexicon(r io.Reader) (*EmotionLexicon, error) {
	index := make(map[string]int, len(emotionCategories))
	for i, c := range emotionCategories {
		index[c] = i
	}

	lexicon := &EmotionLexicon{words: make(map[string][]int)}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 tab-separated fields, got %d", line, len(fields))
		}
		word, category, flag := strings.ToLower(fields[0]), fields[1], fields[2]

		c, ok := index[category]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown category %q", line, category)
		}
		switch flag {
		case "0":
			continue
		case "1":
		default:
			return nil, fmt.Errorf("line %d: association must be 0 or 1, got %q", line, flag)
		}

		lexicon.words[word] = append(lexicon.words[word], c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading emotion lexicon: %w", err)
	}

	return lexicon, nil
}

// Categories returns the categories word is associated with.
func (el *EmotionLexicon) Categories(word string) []string {
	idx := el.words[word]
	if len(idx) == 0 {
		return nil
	}
	cats := make([]string, len(idx))
	for i, c := range idx {
		cats[i] = emotionCategories[c]
	}
	return cats
}

// Contains implements Dictionary.
func (el *EmotionLexicon) Contains(word string) bool {
	_, found := el.words[word]
	return found
}

// Size returns the number of words in the lexicon
func (el *EmotionLexicon) Size() int {
	return len(el.words)
}
