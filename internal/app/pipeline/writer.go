package pipeline

import (
	"context"

	"github.com/fijian-nlp/dataprep/internal/domain"
)

// DatasetWriter persists the datasets one run produces. Implementations
// write each record list only when it is non-empty; statistics are written
// unconditionally.
type DatasetWriter interface {
	WriteDictionary(ctx context.Context, entries []domain.DictionaryEntry) (int, error)
	WriteSentences(ctx context.Context, sentences []domain.Sentence) (int, error)
	WriteTrainingExamples(ctx context.Context, examples []domain.TrainingExample) (int, error)
	WriteStats(ctx context.Context, stats domain.RunStats) error
}
