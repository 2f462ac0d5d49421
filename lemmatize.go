package emovec

import "strings"

// A Dictionary reports whether a word is a known base form.
type Dictionary interface {
	Contains(word string) bool
}

// Lemmatizer reduces nouns to their dictionary form using WordNet's
// detachment rules. Every token is treated as a noun.
type Lemmatizer struct {
	dict       Dictionary
	exceptions map[string]string
}

// NewLemmatizer returns a lemmatizer validating candidates against dict. A
// nil dict accepts no candidate, leaving only exceptions and guarded rules.
func NewLemmatizer(dict Dictionary) *Lemmatizer {
	if dict == nil {
		dict = wordSet{}
	}
	return &Lemmatizer{dict: dict, exceptions: nounExceptions}
}

// Contains implements Dictionary.
func (s wordSet) Contains(word string) bool {
	_, found := s[word]
	return found
}

// multiDictionary is the union of several dictionaries.
type multiDictionary []Dictionary

func (m multiDictionary) Contains(word string) bool {
	for _, d := range m {
		if d.Contains(word) {
			return true
		}
	}
	return false
}

type detachment struct {
	suffix  string
	replace string
}

// nounRules are WordNet's noun detachment rules, in WordNet order.
var nounRules = []detachment{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// fallbackRules apply when the dictionary knows neither the word nor any
// candidate. Most specific suffix first. The bare "s" rule stands in for
// WordNet's noun index, so words WordNet keeps whole go in nonPlurals.
var fallbackRules = []detachment{
	{"sses", "ss"},
	{"ies", "y"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"xes", "x"},
	{"zes", "z"},
	{"s", ""},
}

// Lemmatize returns the base form of a lowercase word, or the word itself.
func (l *Lemmatizer) Lemmatize(word string) string {
	if lemma, ok := l.exceptions[word]; ok {
		return lemma
	}
	if keepsPlural(word) {
		return word
	}

	var found []string
	if l.dict.Contains(word) {
		found = append(found, word)
	}
	for _, r := range nounRules {
		if c, ok := r.apply(word); ok && l.dict.Contains(c) {
			found = append(found, c)
		}
	}
	if len(found) > 0 {
		return shortest(found)
	}

	for _, r := range fallbackRules {
		c, ok := r.apply(word)
		if !ok {
			continue
		}
		if _, irregular := l.exceptions[c]; len(c) >= 3 && !irregular {
			return c
		}
		break
	}
	return word
}

func (d detachment) apply(word string) (string, bool) {
	if !strings.HasSuffix(word, d.suffix) || len(word) <= len(d.suffix) {
		return "", false
	}
	return word[:len(word)-len(d.suffix)] + d.replace, true
}

// keepsPlural reports words ending in "s" that aren't regular plurals.
func keepsPlural(word string) bool {
	for _, suffix := range []string{"ss", "us", "is", "ous", "ics"} {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	_, found := nonPlurals[word]
	return found
}

func shortest(words []string) string {
	best := words[0]
	for _, w := range words[1:] {
		if len(w) < len(best) {
			best = w
		}
	}
	return best
}

var nonPlurals = newWordSet([]string{
	"always", "perhaps", "sometimes", "towards", "afterwards", "besides",
	"nevertheless", "anyways", "thus", "plus", "yes", "lens", "news",
	"series", "species", "means", "gas", "bias", "atlas", "canvas", "chaos",
	"ethos", "pathos", "alias", "whereas", "overseas", "downstairs",
	"upstairs", "indoors", "outdoors", "wales", "christmas", "texas",
	"kansas", "mars", "venus", "james", "charles", "jesus",
	// Adverbs WordNet has no noun for.
	"nowadays", "sideways", "backwards", "upwards", "downwards", "outwards",
	// Nouns WordNet only lists in the plural.
	"thanks", "clothes", "headquarters", "outskirts", "whereabouts",
	"scissors", "remains", "odds", "tidings", "amends", "alms",
})

// nounExceptions covers irregular plurals WordNet lists explicitly.
var nounExceptions = map[string]string{
	"children":   "child",
	"men":        "man",
	"women":      "woman",
	"gentlemen":  "gentleman",
	"firemen":    "fireman",
	"policemen":  "policeman",
	"feet":       "foot",
	"teeth":      "tooth",
	"geese":      "goose",
	"mice":       "mouse",
	"lice":       "louse",
	"oxen":       "ox",
	"wives":      "wife",
	"knives":     "knife",
	"lives":      "life",
	"leaves":     "leaf",
	"wolves":     "wolf",
	"halves":     "half",
	"selves":     "self",
	"thieves":    "thief",
	"loaves":     "loaf",
	"shelves":    "shelf",
	"calves":     "calf",
	"elves":      "elf",
	"scarves":    "scarf",
	"hooves":     "hoof",
	"criteria":   "criterion",
	"phenomena":  "phenomenon",
	"analyses":   "analysis",
	"crises":     "crisis",
	"theses":     "thesis",
	"hypotheses": "hypothesis",
	"diagnoses":  "diagnosis",
	"cacti":      "cactus",
	"fungi":      "fungus",
	"alumni":     "alumnus",
	"stimuli":    "stimulus",
	"indices":    "index",
	"matrices":   "matrix",
	"vertices":   "vertex",
	"appendices": "appendix",
	"dice":       "die",
	"data":       "datum",
	"bacteria":   "bacterium",
	"curricula":  "curriculum",
	"memoranda":  "memorandum",
	"people":     "people",
	"was":        "wa",
	"has":        "ha",
	"does":       "doe",
	"goes":       "go",
	"ourselves":  "ourselves",
	"themselves": "themselves",
	"yourselves": "yourselves",
	"sheep":      "sheep",
	"fish":       "fish",
	"deer":       "deer",
	"aircraft":   "aircraft",
	"spacecraft": "spacecraft",
}
