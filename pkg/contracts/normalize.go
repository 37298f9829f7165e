package contracts

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// parenthetical matches any parenthesized annotation substring, e.g. a
// trailing role note like "Jane Doe (producer)". Annotations are assumed
// non-identifying, so normalization strips them.
var parenthetical = regexp.MustCompile(`\(.*?\)`)

var lower = cases.Lower(language.Und)

// NormalizeName canonicalizes a party or royalty-type name for use as a
// deduplication key: parenthesized annotations are removed, surrounding
// whitespace is trimmed, and the result is lower-cased. Empty input yields
// an empty string.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	clean := parenthetical.ReplaceAllString(name, "")
	return lower.String(strings.TrimSpace(clean))
}

// NormalizeTitle canonicalizes a work or statement title for matching:
// trimmed and lower-cased. Unlike NormalizeName it keeps parenthesized
// segments, since "(feat. X)" style suffixes are part of the title.
func NormalizeTitle(title string) string {
	return lower.String(strings.TrimSpace(title))
}
