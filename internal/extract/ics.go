// Package extract holds the two text-extraction strategies the source
// parsers rely on: field extraction from folded ICS-style blocks, and
// best-effort markup stripping for scraped HTML pages.
package extract

import (
	"regexp"
	"strings"
)

var foldRe = regexp.MustCompile(`\r?\n[ \t]`)

// Unfold joins physical line continuations: a line starting with a space
// or tab continues the previous logical line (RFC 5545 folding).
func Unfold(s string) string {
	return foldRe.ReplaceAllString(s, "")
}

// Field locates a "NAME[;params]:value" content line in block and returns
// the trimmed raw value. The field name is case-sensitive; an optional
// parameter suffix after ';' is ignored. The block is unfolded first.
// The second return is false when no such line exists.
func Field(block, name string) (string, bool) {
	re, err := regexp.Compile(`(?m)^` + regexp.QuoteMeta(name) + `(;[^:\n]*)?:(.*)$`)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(Unfold(block))
	if m == nil {
		return "", false
	}
	// Trailing \r survives the (?m)$ anchor on CRLF input.
	return strings.TrimSpace(m[2]), true
}

var textUnescaper = strings.NewReplacer(
	`\\`, "\\",
	`\n`, "\n",
	`\N`, "\n",
	`\,`, ",",
	`\;`, ";",
)

// UnescapeText reverses ICS text escaping. Replacement is single-pass,
// so an escaped backslash never re-triggers a later substitution; this
// makes it the exact inverse of the encoder's Escape.
func UnescapeText(v string) string {
	return strings.TrimSpace(textUnescaper.Replace(v))
}
