package extract

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	brRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	pEndRe   = regexp.MustCompile(`(?i)</p\s*>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
)

// StripHTML reduces a markup document to plain text: script/style
// elements are removed with their content, line breaks and paragraph
// closes become newlines, remaining tags are dropped, and entities are
// decoded. Best-effort: malformed markup degrades the text but never
// fails.
func StripHTML(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = styleRe.ReplaceAllString(s, "")
	s = brRe.ReplaceAllString(s, "\n")
	s = pEndRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// StripHTMLLines strips markup and splits the result into trimmed,
// non-empty lines for line-oriented pattern matching.
func StripHTMLLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(StripHTML(s), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
