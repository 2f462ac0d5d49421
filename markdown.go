package emovec

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

// FlattenMarkdown renders markdown and keeps only its text. Link targets are
// dropped and link labels kept.
func FlattenMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := htmlTagRE.ReplaceAllString(string(output), " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
