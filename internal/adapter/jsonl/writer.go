// Package jsonl persists pipeline outputs as JSON-lines files plus a JSON
// statistics file in a single output directory.
package jsonl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fijian-nlp/dataprep/internal/domain"
)

// Output file names, fixed by the training-data contract.
const (
	DictionaryFile = "fijian_dictionary.jsonl"
	SentencesFile  = "fijian_text.jsonl"
	ExamplesFile   = "fijian_training_data.jsonl"
	StatsFile      = "processing_stats.json"
)

// Writer persists pipeline outputs under one directory.
type Writer struct {
	dir string
}

// NewWriter creates the output directory (parents included) and returns a
// Writer rooted there. A directory that cannot be created is a run-fatal
// condition for the caller.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the directory the writer was rooted at.
func (w *Writer) Dir() string { return w.dir }

// WriteDictionary writes entries to fijian_dictionary.jsonl, one object per
// line. An empty slice writes no file at all.
func (w *Writer) WriteDictionary(ctx context.Context, entries []domain.DictionaryEntry) (int, error) {
	return writeLines(ctx, filepath.Join(w.dir, DictionaryFile), entries)
}

// WriteSentences writes sentences to fijian_text.jsonl, one object per
// line. An empty slice writes no file at all.
func (w *Writer) WriteSentences(ctx context.Context, sentences []domain.Sentence) (int, error) {
	return writeLines(ctx, filepath.Join(w.dir, SentencesFile), sentences)
}

// WriteTrainingExamples writes examples to fijian_training_data.jsonl, one
// object per line. An empty slice writes no file at all.
func (w *Writer) WriteTrainingExamples(ctx context.Context, examples []domain.TrainingExample) (int, error) {
	return writeLines(ctx, filepath.Join(w.dir, ExamplesFile), examples)
}

// WriteStats writes the run counters to processing_stats.json, indented.
// Unlike the record files, stats are written even when all counters are
// zero.
func (w *Writer) WriteStats(ctx context.Context, stats domain.RunStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(w.dir, StatsFile), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", StatsFile, err)
	}
	return nil
}

// writeLines encodes rows as JSON lines into path. Encoding keeps raw UTF-8
// (no HTML escaping), so Fijian text stays readable in the output.
func writeLines[T any](ctx context.Context, path string, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return 0, fmt.Errorf("encode %s row: %w", filepath.Base(path), err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return len(rows), nil
}
