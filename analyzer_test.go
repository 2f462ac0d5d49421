package emovec

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestAnalyzer(t *testing.T, opts ...AnalyzerOpt) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer(opts...)
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	return analyzer
}

func TestAnalyzeHappyText(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	vec, err := analyzer.Analyze("I am so happy and joyful today!")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if vec.Joy <= 0 {
		t.Errorf("Expected joy > 0, got %.2f", vec.Joy)
	}
	if vec.Subjectivity <= 0 {
		t.Errorf("Expected subjectivity > 0, got %.2f", vec.Subjectivity)
	}
	if vec.Polarity <= 0 {
		t.Errorf("Expected polarity > 0, got %.2f", vec.Polarity)
	}
}

func TestAnalyzeEverydayText(t *testing.T) {
	tests := []struct {
		text     string
		positive []string
		negative bool
		desc     string
	}{
		{
			text:     "The earthquake destroyed the village",
			positive: []string{"fear", "anger", "sadness", "surprise"},
			desc:     "Disaster",
		},
		{
			text:     "The government announced new taxes, people are furious",
			positive: []string{"anger", "disgust", "sadness"},
			negative: true,
			desc:     "Outrage",
		},
		{
			text:     "My dog died yesterday and I cried all night",
			positive: []string{"sadness", "fear"},
			desc:     "Grief",
		},
	}

	analyzer := newTestAnalyzer(t)

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			vec, err := analyzer.Analyze(tt.text)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, label := range tt.positive {
				if v, _ := vec.Get(label); v <= 0 {
					t.Errorf("Text: %q\nExpected %s > 0, got %+v", tt.text, label, vec)
				}
			}
			if tt.negative && vec.Polarity >= 0 {
				t.Errorf("Text: %q\nExpected negative polarity, got %.3f", tt.text, vec.Polarity)
			}
		})
	}
}

func TestAnalyzeZeroVector(t *testing.T) {
	tests := []struct {
		text string
		desc string
	}{
		{"", "Empty text"},
		{"@user https://example.com", "Only mention and URL"},
		{"the and of", "Only stop words"},
		{"!!! ... ???", "Only punctuation"},
	}

	analyzer := newTestAnalyzer(t)

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			vec, err := analyzer.Analyze(tt.text)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !vec.IsZero() {
				t.Errorf("Expected all zeros, got %+v", vec)
			}
		})
	}
}

func TestAnalyzeRanges(t *testing.T) {
	texts := []string{
		"I hate this terrible, awful war. I'm scared and angry!!!",
		"What a wonderful surprise party, I trust my friends.",
		"RT @news: Disaster strikes again... #sad https://t.co/abc",
		"Nothing to see here",
		"Extremely extremely extremely good!!!",
	}

	for _, engine := range []string{SentimentEnginePattern, SentimentEngineVader} {
		analyzer := newTestAnalyzer(t, UsingSentimentEngine(engine))
		for _, text := range texts {
			vec, err := analyzer.Analyze(text)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for i, v := range vec.Values() {
				lo := 0.0
				if Labels[i] == "polarity" {
					lo = -1
				}
				if v < lo || v > 1 {
					t.Errorf("Engine %s text %q: %s out of range: %f", engine, text, Labels[i], v)
				}
			}
		}
	}
}

func TestEmotionVectorJSON(t *testing.T) {
	vec := EmotionVector{Polarity: -0.5, Anticip: 0.25, Joy: 1}

	data, err := json.Marshal(vec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Keys must appear in label order.
	last := -1
	for _, label := range Labels {
		idx := strings.Index(string(data), `"`+label+`"`)
		if idx <= last {
			t.Fatalf("Label %q out of order in %s", label, data)
		}
		last = idx
	}

	if v, ok := vec.Get("anticip"); !ok || v != 0.25 {
		t.Errorf("Expected anticip 0.25, got %.2f (%v)", v, ok)
	}
	if _, ok := vec.Get("anticipation"); ok {
		t.Error("Expected unknown label to be missing")
	}
	if m := vec.Map(); len(m) != len(Labels) || m["polarity"] != -0.5 {
		t.Errorf("Unexpected map %v", m)
	}
}

func TestAnalyzeAnticipation(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	vec, err := analyzer.Analyze("We wait for tomorrow")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if vec.Anticip <= 0 {
		t.Errorf("Expected anticipation to be reported as anticip, got %+v", vec)
	}
}

func TestAnalyzeInvalidEncoding(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	_, err := analyzer.Analyze("bad \xff bytes")
	if !errors.Is(err, ErrAnalysis) || !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Expected ErrAnalysis wrapping ErrInvalidEncoding, got %v", err)
	}
}

type panickingScorer struct{}

func (panickingScorer) Score(string) SentimentScore {
	panic("lexicon exploded")
}

func TestAnalyzeRecoversPanics(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	analyzer.sentiment = panickingScorer{}

	_, err := analyzer.Analyze("happy")
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("Expected ErrAnalysis, got %v", err)
	}
	if !strings.Contains(err.Error(), "lexicon exploded") {
		t.Errorf("Expected panic value in error, got %q", err)
	}
}

func TestNewDocument(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	doc, err := analyzer.NewDocument("The children were crying. Such sorrow!")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if doc.Cleaned != "child crying sorrow" {
		t.Errorf("Expected cleaned text %q, got %q", "child crying sorrow", doc.Cleaned)
	}
	if doc.Metadata.WordCount != 3 {
		t.Errorf("Expected 3 words, got %d", doc.Metadata.WordCount)
	}
	if !doc.Metadata.MatchedEmotions {
		t.Error("Expected emotions to match")
	}
	if doc.Vector().Sadness <= 0 {
		t.Errorf("Expected sadness > 0, got %.2f", doc.Vector().Sadness)
	}
	if analyzer.Clean(doc.Text) != doc.Cleaned {
		t.Error("Expected Clean to match the document's cleaned text")
	}
}

func TestNewAnalyzerOptions(t *testing.T) {
	dir := t.TempDir()
	nrc := filepath.Join(dir, "nrc.txt")
	if err := os.WriteFile(nrc, []byte("zest\tjoy\t1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	analyzer := newTestAnalyzer(t,
		UsingStopWords(StopWordsExtended),
		WithEmotionLexicon(nrc),
		WithMarkdown(true),
	)

	vec, err := analyzer.Analyze("**zest** and [happy](https://example.com)")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if vec.Joy != 1 {
		t.Errorf("Expected joy 1 from the file lexicon, got %.2f", vec.Joy)
	}

	bad := []AnalyzerOpt{
		UsingStopWords("klingon"),
		UsingSentimentEngine("bert"),
		WithEmotionLexicon(filepath.Join(dir, "missing.txt")),
		WithSentimentLexicon(filepath.Join(dir, "missing.json")),
	}
	for _, opt := range bad {
		if _, err := NewAnalyzer(opt); err == nil {
			t.Error("Expected error for invalid option")
		}
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	want, err := analyzer.Analyze("I love my wonderful friends")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := analyzer.Analyze("I love my wonderful friends")
			if err != nil || got != want {
				t.Errorf("Concurrent analysis diverged: %+v, %v", got, err)
			}
		}()
	}
	wg.Wait()
}
