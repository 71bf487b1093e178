// Package pipeline orchestrates one Fijian data cleaning run: walk the
// input tree, route each file to an extractor, build training examples and
// hand the results to a DatasetWriter.
package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fijian-nlp/dataprep/internal/app/pipeline/corpus"
	"github.com/fijian-nlp/dataprep/internal/app/pipeline/dictfile"
	"github.com/fijian-nlp/dataprep/internal/app/pipeline/training"
	"github.com/fijian-nlp/dataprep/internal/domain"
	"github.com/fijian-nlp/dataprep/pkg/ctxutil"
)

// dictMarker routes any file whose base name contains it to the dictionary
// extractor, whatever the extension ("dictionary" contains "dict" too).
// The marker beats extension routing; tests and data sets rely on the
// file-naming convention.
const dictMarker = "dict"

// FileKind tells which extractor a file was routed to.
type FileKind string

const (
	FileKindDictionary FileKind = "dictionary"
	FileKindText       FileKind = "text"
	FileKindIgnored    FileKind = "ignored"
)

func (k FileKind) String() string { return string(k) }

// FileResult holds the outcome of processing a single input file.
type FileResult struct {
	Path      string
	Kind      FileKind
	Records   int
	LinesSeen int
	LinesKept int
	Duration  time.Duration
	Err       error
}

// Pipeline orchestrates one cleaning run.
type Pipeline struct {
	log      *slog.Logger
	writer   DatasetWriter
	cfg      Config
	textExts map[string]bool
	results  []FileResult
	stats    domain.RunStats
}

// New creates a Pipeline writing through the given DatasetWriter.
func New(log *slog.Logger, writer DatasetWriter, cfg Config) *Pipeline {
	textExts := make(map[string]bool, len(cfg.TextExtensions))
	for _, ext := range cfg.TextExtensions {
		if ext = normalizeExt(ext); ext != "" {
			textExts[ext] = true
		}
	}
	return &Pipeline{
		log:      log,
		writer:   writer,
		cfg:      cfg,
		textExts: textExts,
	}
}

// Results returns per-file results after Run completes, in walk order.
func (p *Pipeline) Results() []FileResult { return p.results }

// Stats returns the run counters after Run completes.
func (p *Pipeline) Stats() domain.RunStats { return p.stats }

// HasErrors reports whether any file failed during the run. Failed files
// are skipped, never fatal; callers decide what to make of the signal.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes a single pass over inputDir. Per-file failures are logged
// and recorded but do not stop the run; a Run error means the input tree
// could not be walked or an output could not be written.
func (p *Pipeline) Run(ctx context.Context, inputDir string) error {
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		p.log = p.log.With(slog.String("run_id", id.String()))
	}

	p.results = nil
	p.stats = domain.RunStats{}

	p.log.Info("starting pipeline",
		slog.String("input_dir", inputDir),
		slog.Bool("dry_run", p.cfg.DryRun),
	)

	var (
		entries   []domain.DictionaryEntry
		sentences []domain.Sentence
	)

	walkErr := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == inputDir {
				return err
			}
			// An unreadable entry is a per-file failure, not a run failure.
			p.results = append(p.results, FileResult{Path: path, Kind: FileKindIgnored, Err: err})
			p.log.Error("cannot access path",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result, fileEntries, fileSentences := p.processFile(path)
		p.results = append(p.results, result)

		p.stats.FilesProcessed++
		p.stats.LinesProcessed += result.LinesSeen
		p.stats.LinesCleaned += result.LinesKept
		p.stats.LinesRemoved += result.LinesSeen - result.LinesKept

		entries = append(entries, fileEntries...)
		sentences = append(sentences, fileSentences...)
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walk input dir: %w", walkErr)
	}

	examples := training.Build(entries, sentences)

	p.log.Info("extraction complete",
		slog.Int("files_processed", p.stats.FilesProcessed),
		slog.Int("dictionary_entries", len(entries)),
		slog.Int("sentences", len(sentences)),
		slog.Int("training_examples", len(examples)),
	)

	if p.cfg.DryRun {
		p.log.Info("dry run: skipping writes")
		return nil
	}

	if _, err := p.writer.WriteDictionary(ctx, entries); err != nil {
		return fmt.Errorf("write dictionary: %w", err)
	}
	if _, err := p.writer.WriteSentences(ctx, sentences); err != nil {
		return fmt.Errorf("write sentences: %w", err)
	}
	if _, err := p.writer.WriteTrainingExamples(ctx, examples); err != nil {
		return fmt.Errorf("write training examples: %w", err)
	}
	if err := p.writer.WriteStats(ctx, p.stats); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	p.log.Info("pipeline completed",
		slog.Int("files_processed", p.stats.FilesProcessed),
		slog.Int("lines_processed", p.stats.LinesProcessed),
		slog.Int("lines_cleaned", p.stats.LinesCleaned),
		slog.Int("lines_removed", p.stats.LinesRemoved),
	)
	return nil
}

// processFile routes one file to its extractor and reports the outcome.
// Extractors return nothing but zeroed stats on failure, so a failed file
// contributes no records and no counter movement beyond files_processed.
func (p *Pipeline) processFile(path string) (FileResult, []domain.DictionaryEntry, []domain.Sentence) {
	start := time.Now()
	result := FileResult{Path: path, Kind: p.classify(path)}

	var (
		entries   []domain.DictionaryEntry
		sentences []domain.Sentence
	)

	switch result.Kind {
	case FileKindDictionary:
		var stats dictfile.Stats
		entries, stats, result.Err = dictfile.Parse(path, p.cfg.HeadwordColumn, p.cfg.DefinitionColumn)
		result.Records = len(entries)
		result.LinesSeen = stats.LinesSeen
		result.LinesKept = stats.LinesKept
	case FileKindText:
		var stats corpus.Stats
		sentences, stats, result.Err = corpus.Parse(path)
		result.Records = len(sentences)
		result.LinesSeen = stats.FragmentsSeen
		result.LinesKept = stats.SentencesKept
	}
	result.Duration = time.Since(start)

	switch {
	case result.Err != nil:
		p.log.Error("file failed",
			slog.String("path", path),
			slog.String("kind", result.Kind.String()),
			slog.String("error", result.Err.Error()),
		)
	case result.Kind == FileKindIgnored:
		p.log.Debug("file ignored", slog.String("path", path))
	default:
		p.log.Info("file processed",
			slog.String("path", path),
			slog.String("kind", result.Kind.String()),
			slog.Int("records", result.Records),
			slog.Duration("duration", result.Duration),
		)
	}

	return result, entries, sentences
}

// classify applies routing precedence: dictionary marker in the base name
// first, then recognized text extensions, else ignored.
func (p *Pipeline) classify(path string) FileKind {
	base := strings.ToLower(filepath.Base(path))
	if strings.Contains(base, dictMarker) {
		return FileKindDictionary
	}
	if p.textExts[filepath.Ext(base)] {
		return FileKindText
	}
	return FileKindIgnored
}

// normalizeExt lowercases an extension and guarantees the leading dot, so
// config may list either "txt" or ".txt".
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
