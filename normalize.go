package emovec

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// space matches what Python's str.isspace accepts, not only ASCII.
const space = `\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}`

var (
	mentionRE  = regexp.MustCompile(`@[A-Za-z0-9_]+`)
	retweetRE  = regexp.MustCompile(`RT[` + space + `]+`)
	urlRE      = regexp.MustCompile(`https?://[^` + space + `]+`)
	colonRE    = regexp.MustCompile(`:[` + space + `]+`)
	ellipsisRE = regexp.MustCompile(`\.\.\.+`)

	hashStripper  = strings.NewReplacer("#", "")
	quoteStripper = strings.NewReplacer("'", "", `"`, "")
)

// Normalizer reduces raw text to a lowercase, space-joined sequence of
// lemmatized content words. It is safe for concurrent use.
type Normalizer struct {
	tokenizer     Tokenizer
	stopWords     StopWords
	lemmatizer    *Lemmatizer
	stripMarkdown bool
}

// NormalizerOpt configures a Normalizer.
type NormalizerOpt func(*Normalizer)

// WithMarkdownStripping flattens markdown to plain text before cleaning.
func WithMarkdownStripping(enabled bool) NormalizerOpt {
	return func(n *Normalizer) {
		n.stripMarkdown = enabled
	}
}

// NewNormalizer creates a Normalizer from its parts.
func NewNormalizer(tokenizer Tokenizer, stopWords StopWords, lemmatizer *Lemmatizer, opts ...NormalizerOpt) *Normalizer {
	n := &Normalizer{
		tokenizer:  tokenizer,
		stopWords:  stopWords,
		lemmatizer: lemmatizer,
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	return n
}

// Clean runs the full pipeline and returns the cleaned text, which is empty
// when no content word survives.
func (n *Normalizer) Clean(text string) string {
	return strings.Join(n.Words(text), " ")
}

// Words returns the lemmatized content words of text.
func (n *Normalizer) Words(text string) []string {
	stripped := n.Strip(text)

	var words []string
	for _, tok := range n.tokenizer.Tokenize(stripped) {
		if n.stopWords.IsStopWord(tok.Text) || !isAlpha(tok.Text) {
			continue
		}
		words = append(words, n.lemmatizer.Lemmatize(tok.Text))
	}
	return words
}

// Strip applies the character-level cleanup steps and lowercases the
// result. The order matters: each step sees the previous step's output.
func (n *Normalizer) Strip(text string) string {
	if n.stripMarkdown {
		text = FlattenMarkdown(text)
	}

	text = mentionRE.ReplaceAllString(text, "")
	text = hashStripper.Replace(text)
	text = retweetRE.ReplaceAllString(text, "")
	text = urlRE.ReplaceAllString(text, "")
	text = colonRE.ReplaceAllString(text, "")
	text = quoteStripper.Replace(text)
	text = ellipsisRE.ReplaceAllString(text, "")

	// Casers keep state, so each call gets its own.
	return cases.Lower(language.Und).String(text)
}

// isAlpha reports whether s is non-empty and made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
