package emovec

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type TokenTester func(string) bool

type Tokenizer interface {
	Tokenize(string) []*Token
}

// iterTokenizer splits text into sentences and each sentence into words,
// following the Penn Treebank conventions.
type iterTokenizer struct {
	segmenter      SentenceSegmenter
	rewrites       []rewriteRule
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	isUnsplittable TokenTester
}

// rewriteRule is a regex substitution applied to a sentence before it is
// split on whitespace.
type rewriteRule struct {
	re   *regexp.Regexp
	repl string
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// UsingSegmenter sets the sentence segmenter run before word splitting.
func UsingSegmenter(x SentenceSegmenter) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.segmenter = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// NewIterTokenizer builds a tokenizer. Without UsingSegmenter the whole
// input is treated as one sentence.
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	// Set default parameters
	tok.segmenter = wholeText{}
	tok.rewrites = treebankRewrites
	tok.contractions = contractions
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	// Apply options if provided
	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func addToken(s string, sentence int, toks []*Token) []*Token {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, &Token{Text: s, Sentence: sentence})
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	return t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *iterTokenizer) doSplit(token string, sentence int) []*Token {
	tokens := []*Token{}
	suffs := []*Token{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// Abbreviations and caller-protected tokens stay whole.
			tokens = addToken(token, sentence, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., "hi -> [", hi].
			tokens = addToken(string(token[0]), sentence, tokens)
			token = token[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// Handle "they'll", "I'll", "Don't", "won't".
			//
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			tokens = addToken(token[:idx], sentence, tokens)
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., hi" -> [hi, "].
			suffs = append([]*Token{
				{Text: string(token[len(token)-1]), Sentence: sentence}},
				suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, sentence, tokens)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits text into sentences and returns the words of all of them
// in order.
func (t *iterTokenizer) Tokenize(text string) []*Token {
	var tokens []*Token

	for i, sent := range t.segmenter.Segment(text) {
		clean := t.sanitizer.Replace(sent.Text)
		for _, rule := range t.rewrites {
			clean = rule.re.ReplaceAllString(clean, rule.repl)
		}

		cache := map[string][]*Token{}
		for _, span := range strings.Fields(clean) {
			toks, found := cache[span]
			if !found {
				toks = t.doSplit(span, i)
				cache[span] = toks
			}
			for _, tok := range toks {
				tokens = append(tokens, &Token{Text: tok.Text, Sentence: i})
			}
		}
	}

	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	n := len(s)
	for _, prefix := range prefixes {
		if n > len(prefix) && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	n := len(s)
	for _, suffix := range suffixes {
		if n > len(suffix) && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyIndex(s string, suffixes []string) int {
	n := len(s)
	for _, suffix := range suffixes {
		idx := strings.Index(s, suffix)
		if idx >= 0 && n > len(suffix) {
			return idx
		}
	}
	return -1
}

// treebankRewrites isolates punctuation the way the Treebank tokenizer does
// and splits the fused forms it treats as two words.
var treebankRewrites = []rewriteRule{
	{regexp.MustCompile(`([:,])([^\d])`), " $1 $2"},
	{regexp.MustCompile(`([:,])$`), " $1 "},
	{regexp.MustCompile(`\.\.\.`), " ... "},
	{regexp.MustCompile(`[;@#$%&]`), " $0 "},
	{regexp.MustCompile(`([^\.])(\.)([\]\)}>"']*)\s*$`), "$1 $2$3 "},
	{regexp.MustCompile(`[?!]`), " $0 "},
	{regexp.MustCompile(`[\]\[\(\)\{\}<>]`), " $0 "},
	{regexp.MustCompile(`--`), " -- "},
	{regexp.MustCompile(`(?i)\b(can)(not)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(d)('ye)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(gim)(me)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(gon)(na)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(got)(ta)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(lem)(me)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(more)('n)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(wan)(na)(\s)`), " $1 $2 "},
	{regexp.MustCompile(`(?i)(^|\s)('t)(is|was)\b`), " $2 $3 "},
}

// internalRE matches abbreviations such as "U.S." and "Mr." that keep
// their periods.
var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)

// sanitizer folds typographic quotes into ASCII so contractions written
// with them still split.
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'",
)

var contractions = []string{"'ll", "'s", "'re", "'m", "'ve", "'d", "n't"}

// The rewrites already isolate brackets and most punctuation, so only the
// characters they leave attached are peeled here.
var (
	prefixes = []string{`"`}
	suffixes = []string{`"`, "'", "."}
)
