package emovec

import (
	"testing"
)

func TestStopWords(t *testing.T) {
	tests := []struct {
		name string
		stop []string
		keep []string
	}{
		{
			name: StopWordsNLTK,
			stop: []string{"i", "the", "and", "don't", "so", "very", "not"},
			keep: []string{"happy", "joy", "today", "n"},
		},
		{
			name: StopWordsExtended,
			stop: []string{"i", "the", "and", "don't", "so", "very", "not"},
			keep: []string{"happy", "joy", "sadness"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, err := NewStopWords(tt.name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, w := range tt.stop {
				if !sw.IsStopWord(w) {
					t.Errorf("Expected %q to be a stop word", w)
				}
			}
			for _, w := range tt.keep {
				if sw.IsStopWord(w) {
					t.Errorf("Expected %q not to be a stop word", w)
				}
			}
		})
	}
}

func TestEnglishStopWordsSize(t *testing.T) {
	if n := len(newWordSet(englishStopWords)); n != 179 {
		t.Errorf("Expected 179 distinct stop words, got %d", n)
	}
}

func TestUnknownStopWords(t *testing.T) {
	if _, err := NewStopWords("klingon"); err == nil {
		t.Error("Expected error for unknown stop-word set")
	}
}
