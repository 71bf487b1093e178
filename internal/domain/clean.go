package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s\-'.,;:!?()]`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// Normalize cleans a raw text fragment for validation and output:
//   - applies Unicode NFC composition (Fijian macron vowels arrive both
//     precomposed and decomposed depending on the source)
//   - removes HTML tags
//   - removes characters outside letters, digits, underscore, whitespace
//     and the punctuation set - ' . , ; : ! ? ( )
//   - collapses whitespace runs into single spaces and trims the ends
//
// Normalize is idempotent: applying it to its own output changes nothing.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)

	// Tags go first: the character filter below would eat the angle
	// brackets and leave the tag names behind.
	text = htmlTagRe.ReplaceAllString(text, "")

	text = disallowedRe.ReplaceAllString(text, "")

	// Collapse after filtering, so removed characters cannot leave double
	// spaces behind.
	text = multiSpaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
