// Package training derives instruction-tuning examples from cleaned
// dictionary entries and corpus sentences.
package training

import (
	"fmt"

	"github.com/fijian-nlp/dataprep/internal/domain"
)

const (
	definitionInstruction = "Define the Fijian word: %s"
	completionInstruction = "Complete the following Fijian text:"
)

// Build converts entries and sentences into training examples: one
// definition example per dictionary entry, then one completion example per
// sentence, preserving input order within each group.
//
// A completion example splits its sentence at half the rune count; the
// split is deliberately word-unaware and may fall inside a word.
func Build(entries []domain.DictionaryEntry, sentences []domain.Sentence) []domain.TrainingExample {
	examples := make([]domain.TrainingExample, 0, len(entries)+len(sentences))

	for _, e := range entries {
		examples = append(examples, domain.TrainingExample{
			Instruction: fmt.Sprintf(definitionInstruction, e.Headword),
			Input:       e.Headword,
			Output:      e.Definition,
			TaskType:    domain.TaskTypeDefinition,
		})
	}

	for _, s := range sentences {
		runes := []rune(s.Text)
		mid := len(runes) / 2
		examples = append(examples, domain.TrainingExample{
			Instruction: completionInstruction,
			Input:       string(runes[:mid]),
			Output:      string(runes[mid:]),
			TaskType:    domain.TaskTypeCompletion,
		})
	}

	return examples
}
