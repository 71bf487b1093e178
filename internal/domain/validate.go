package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPhraseRunes = 3
	minPhraseWords = 2
	minLetterRatio = 0.6
)

// IsLikelyPhrase reports whether text looks like a usable Fijian phrase:
// at least 3 runes after trimming, at least 2 whitespace-separated words,
// and letters making up at least 60% of all runes. Single words and
// digit- or symbol-heavy fragments are rejected.
func IsLikelyPhrase(text string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minPhraseRunes {
		return false
	}
	if len(strings.Fields(text)) < minPhraseWords {
		return false
	}

	letters, total := 0, 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return float64(letters)/float64(total) >= minLetterRatio
}
