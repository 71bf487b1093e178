// Command dataprep cleans raw Fijian-language dictionary and text files and
// produces JSONL training data for language-model fine-tuning.
// It runs offline as a single batch pass: one invocation walks the input
// tree, writes the output files, and exits.
//
// Flags:
//
//	--input, -i        directory containing raw data files (required)
//	--output, -o       directory for generated JSONL files (required)
//	--verbose, -v      enable debug logging
//	--dry-run          parse and validate without writing output files
//	--pipeline-config  path to pipeline YAML config file
//
// Exit codes: 0 = success (failed input files are skipped and reported in
// the stats), 1 = unrecovered error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fijian-nlp/dataprep/internal/adapter/jsonl"
	"github.com/fijian-nlp/dataprep/internal/app"
	"github.com/fijian-nlp/dataprep/internal/app/pipeline"
	"github.com/fijian-nlp/dataprep/internal/config"
	"github.com/fijian-nlp/dataprep/pkg/ctxutil"
)

// Compile-time interface assertion.
var _ pipeline.DatasetWriter = (*jsonl.Writer)(nil)

func main() {
	var (
		inputDir           string
		outputDir          string
		verbose            bool
		dryRun             bool
		pipelineConfigPath string
	)
	flag.StringVar(&inputDir, "input", "", "directory containing raw data files")
	flag.StringVar(&inputDir, "i", "", "directory containing raw data files (shorthand)")
	flag.StringVar(&outputDir, "output", "", "directory for generated JSONL files")
	flag.StringVar(&outputDir, "o", "", "directory for generated JSONL files (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.BoolVar(&verbose, "v", false, "enable debug logging (shorthand)")
	flag.BoolVar(&dryRun, "dry-run", false, "parse and validate without writing output files")
	flag.StringVar(&pipelineConfigPath, "pipeline-config", "", "path to pipeline YAML config file")
	flag.Parse()

	if inputDir == "" || outputDir == "" {
		flag.Usage()
		log.Fatal("both --input and --output are required")
	}

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	// CLI flags override config.
	if verbose {
		appCfg.Log.Level = "debug"
	}

	baseLogger := app.NewLogger(appCfg.Log)

	pipeCfg, err := pipeline.LoadConfig(pipelineConfigPath)
	if err != nil {
		baseLogger.Error("load pipeline config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if dryRun {
		pipeCfg.DryRun = true
	}

	runID := uuid.New()
	logger := baseLogger.With(slog.String("run_id", runID.String()))

	logger.Info("starting fijian data preparation",
		slog.String("version", app.BuildVersion()),
		slog.String("input", inputDir),
		slog.String("output", outputDir),
	)

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, runID)

	writer, err := jsonl.NewWriter(outputDir)
	if err != nil {
		logger.Error("create output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The pipeline tags its own logger with the run ID from the context.
	p := pipeline.New(baseLogger, writer, *pipeCfg)
	if err := p.Run(ctx, inputDir); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Failed files are skipped, reported, and do not fail the run.
	if p.HasErrors() {
		failed := 0
		for _, r := range p.Results() {
			if r.Err != nil {
				failed++
			}
		}
		logger.Warn("some input files failed", slog.Int("failed_files", failed))
	}

	stats := p.Stats()
	logger.Info("pipeline completed",
		slog.Int("files_processed", stats.FilesProcessed),
		slog.Int("lines_processed", stats.LinesProcessed),
		slog.Int("lines_cleaned", stats.LinesCleaned),
		slog.Int("lines_removed", stats.LinesRemoved),
	)
}
