// Package corpus extracts validated Fijian sentences from prose text files.
// Pure functions: file path in, domain structs out.
package corpus

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fijian-nlp/dataprep/internal/domain"
)

// Sentence terminators: one or more consecutive . ! ? end a sentence and
// are discarded with the split.
var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// Stats holds parser counters for one file, reported up to the run totals.
type Stats struct {
	FragmentsSeen int
	SentencesKept int
}

// Parse reads a prose file, splits it into sentence fragments and returns
// the fragments that survive cleaning and validation, in appearance order.
func Parse(filePath string) ([]domain.Sentence, Stats, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read file: %w", err)
	}

	sentences, stats := parseContent(string(content))
	return sentences, stats, nil
}

func parseContent(content string) ([]domain.Sentence, Stats) {
	var (
		sentences []domain.Sentence
		stats     Stats
	)
	for _, fragment := range sentenceEndRe.Split(content, -1) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}

		stats.FragmentsSeen++
		cleaned := domain.Normalize(fragment)
		if !domain.IsLikelyPhrase(cleaned) {
			continue
		}

		stats.SentencesKept++
		sentences = append(sentences, domain.Sentence{Text: cleaned})
	}
	return sentences, stats
}
