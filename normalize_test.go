package emovec

import (
	"testing"
)

func newTestNormalizer(opts ...NormalizerOpt) *Normalizer {
	stopWords, _ := NewStopWords(StopWordsNLTK)
	return NewNormalizer(NewIterTokenizer(), stopWords, NewLemmatizer(LoadEmotionLexicon()), opts...)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		text     string
		expected string
		desc     string
	}{
		{"@user_1 hello", " hello", "Mention"},
		{"#Happy day", "happy day", "Hashtag keeps its word"},
		{"RT @bob: great", "great", "Retweet marker"},
		{"ART show", "ashow", "Marker is unanchored"},
		{"see https://x.co/a now", "see  now", "URL"},
		{"time: now", "timenow", "Colon and whitespace"},
		{"ratio 3:4", "ratio 3:4", "Bare colon kept"},
		{`He said "don't"`, "he said dont", "Quotes"},
		{"wait... what", "wait what", "Ellipsis"},
		{"wait.. what", "wait.. what", "Two periods kept"},
		{"HELLO Wörld ÀÉÎ", "hello wörld àéî", "Unicode lowercase"},
		{"RT\u00a0now", "now", "Unicode whitespace"},
		{"", "", "Empty text"},
	}

	normalizer := newTestNormalizer()

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := normalizer.Strip(tt.text); got != tt.expected {
				t.Errorf("Text: %q\nExpected: %q\nGot: %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		text     string
		expected string
		desc     string
	}{
		{"I am so happy and joyful today!", "happy joyful today", "Stop words and punctuation"},
		{"The cats are running", "cat running", "Plural noun"},
		{"Parties and glasses", "party glass", "Plural suffixes"},
		{"I don't like it", "dont like", "Apostrophe removed before tokenizing"},
		{"I don’t like it", "like", "Typographic contraction splits"},
		{"Call me at 555-1234", "call", "Numbers dropped"},
		{"@user https://example.com", "", "Only mention and URL"},
		{"", "", "Empty text"},
	}

	normalizer := newTestNormalizer()

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := normalizer.Clean(tt.text); got != tt.expected {
				t.Errorf("Text: %q\nExpected: %q\nGot: %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	texts := []string{
		"I am so happy and joyful today!",
		"The wolves and the children were crying over their losses",
		"Buses, boxes and churches... #blessed",
		"RT @someone: tears of joy https://t.co/xyz",
	}

	normalizer := newTestNormalizer()

	for _, text := range texts {
		once := normalizer.Clean(text)
		if twice := normalizer.Clean(once); twice != once {
			t.Errorf("Text: %q\nFirst: %q\nSecond: %q", text, once, twice)
		}
	}
}

func TestMarkdownStripping(t *testing.T) {
	text := "**Great** [news](https://example.com/story)"

	plain := newTestNormalizer().Strip(text)
	if plain != "**great** [news](" {
		t.Errorf("Expected markdown to pass through, got %q", plain)
	}

	flattened := newTestNormalizer(WithMarkdownStripping(true)).Strip(text)
	if flattened != "great news" {
		t.Errorf("Expected flattened text, got %q", flattened)
	}
}

func TestFlattenMarkdown(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"# Title\n\nSome *emphasis* here.", "Title Some emphasis here."},
		{"- one\n- two", "one two"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FlattenMarkdown(tt.text); got != tt.expected {
			t.Errorf("Text: %q\nExpected: %q\nGot: %q", tt.text, tt.expected, got)
		}
	}
}
