package emovec

import (
	"fmt"
	"strings"

	"github.com/bbalet/stopwords"
)

// StopWords decides whether a lowercase token is a function word that
// carries no content.
type StopWords interface {
	IsStopWord(token string) bool
}

// Stop-word set names accepted by NewStopWords.
const (
	StopWordsNLTK     = "nltk"
	StopWordsExtended = "extended"
)

// NewStopWords returns the named English stop-word set.
func NewStopWords(name string) (StopWords, error) {
	switch name {
	case "", StopWordsNLTK:
		return newWordSet(englishStopWords), nil
	case StopWordsExtended:
		return &libraryStopWords{
			base:     newWordSet(englishStopWords),
			langCode: string(English),
		}, nil
	default:
		return nil, fmt.Errorf("unknown stop-word set %q", name)
	}
}

// wordSet is an immutable set of words.
type wordSet map[string]struct{}

func newWordSet(words []string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) IsStopWord(token string) bool {
	_, found := s[token]
	return found
}

// libraryStopWords extends the base list with the bbalet/stopwords list for
// the language. The library doesn't export its lists, so a token is a stop
// word when the library's cleaner removes it.
type libraryStopWords struct {
	base     wordSet
	langCode string
}

func (s *libraryStopWords) IsStopWord(token string) bool {
	if s.base.IsStopWord(token) {
		return true
	}
	return strings.TrimSpace(stopwords.CleanString(token, s.langCode, false)) == ""
}

// englishStopWords is the classic 179-word English list.
var englishStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "that'll", "these", "those", "am", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
	"as", "until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before", "after",
	"above", "below", "to", "from", "up", "down", "in", "out", "on", "off",
	"over", "under", "again", "further", "then", "once", "here", "there",
	"when", "where", "why", "how", "all", "any", "both", "each", "few",
	"more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will",
	"just", "don", "don't", "should", "should've", "now", "d", "ll", "m",
	"o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn",
	"hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn",
	"mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
	"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won",
	"won't", "wouldn", "wouldn't",
}
