package emovec

import (
	"testing"
)

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word     string
		expected string
		desc     string
	}{
		{"cats", "cat", "Regular plural"},
		{"parties", "party", "ies plural"},
		{"boxes", "box", "xes plural"},
		{"churches", "church", "ches plural"},
		{"glasses", "glass", "sses plural"},
		{"buses", "bus", "Dictionary validates ses"},
		{"children", "child", "Irregular plural"},
		{"wolves", "wolf", "ves plural"},
		{"was", "wa", "Exception table"},
		{"glass", "glass", "Singular ss"},
		{"news", "news", "Plural-looking singular"},
		{"analysis", "analysis", "Singular is"},
		{"tears", "tears", "Dictionary form kept"},
		{"as", "as", "Too short to strip"},
		{"running", "running", "Nouns only"},
		{"joy", "joy", "Base form"},
		{"thanks", "thanks", "Plural-only noun"},
		{"clothes", "clothes", "Plural-only noun with es"},
		{"nowadays", "nowadays", "Adverb"},
		{"lamps", "lamp", "Unknown regular plural"},
	}

	lemmatizer := NewLemmatizer(multiDictionary{LoadEmotionLexicon(), newWordSet([]string{"bus"})})

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := lemmatizer.Lemmatize(tt.word); got != tt.expected {
				t.Errorf("Word: %q\nExpected: %q\nGot: %q", tt.word, tt.expected, got)
			}
		})
	}
}

func TestLemmatizeIdempotent(t *testing.T) {
	words := []string{
		"cats", "parties", "boxes", "churches", "glasses", "buses", "children",
		"wolves", "was", "has", "does", "goes", "news", "tears", "losses",
		"feelings", "mens", "series", "ladies", "quizzes", "wishes", "data",
	}

	for _, dict := range []Dictionary{nil, LoadEmotionLexicon(), LoadSentimentLexicon(English)} {
		lemmatizer := NewLemmatizer(dict)
		for _, w := range words {
			once := lemmatizer.Lemmatize(w)
			if twice := lemmatizer.Lemmatize(once); twice != once {
				t.Errorf("Word: %q\nFirst: %q\nSecond: %q", w, once, twice)
			}
		}
	}
}
