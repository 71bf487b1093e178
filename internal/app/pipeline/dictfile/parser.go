// Package dictfile extracts Fijian headword/definition pairs from
// dictionary source files (CSV, TSV, or " - " delimited text).
// Pure functions: file path in, domain structs out.
package dictfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fijian-nlp/dataprep/internal/domain"
)

// pairSeparator splits a line-delimited entry into headword and definition.
// Only the first occurrence splits; definitions may contain the token again.
const pairSeparator = " - "

// Stats holds parser counters for one file, reported up to the run totals.
type Stats struct {
	LinesSeen int
	LinesKept int
}

// Parse reads a dictionary file and returns the cleaned entries it yields.
//
// The format is chosen by extension (case-insensitive): .csv and .tsv are
// tabular with a header row and must contain the named headword and
// definition columns (files lacking either column yield zero entries, not
// an error); .txt is line-delimited with " - " between headword and
// definition. Any other extension yields zero entries without an error.
func Parse(filePath, headwordCol, definitionCol string) ([]domain.DictionaryEntry, Stats, error) {
	source := filepath.Base(filePath)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return parseTabularFile(filePath, ',', source, headwordCol, definitionCol)
	case ".tsv":
		return parseTabularFile(filePath, '\t', source, headwordCol, definitionCol)
	case ".txt":
		f, err := os.Open(filePath)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		return parseDelimited(f, source)
	default:
		return nil, Stats{}, nil
	}
}

func parseTabularFile(filePath string, comma rune, source, headwordCol, definitionCol string) ([]domain.DictionaryEntry, Stats, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return parseTabular(f, comma, source, headwordCol, definitionCol)
}

// parseTabular reads header-first tabular data. Rows shorter than the
// resolved column indexes are rejected, not errors.
func parseTabular(r io.Reader, comma rune, source, headwordCol, definitionCol string) ([]domain.DictionaryEntry, Stats, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, Stats{}, nil
		}
		return nil, Stats{}, fmt.Errorf("read header: %w", err)
	}

	headwordIdx, definitionIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case headwordCol:
			headwordIdx = i
		case definitionCol:
			definitionIdx = i
		}
	}
	if headwordIdx < 0 || definitionIdx < 0 {
		return nil, Stats{}, nil
	}

	var (
		entries []domain.DictionaryEntry
		stats   Stats
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Stats{}, fmt.Errorf("read row: %w", err)
		}

		stats.LinesSeen++
		if headwordIdx >= len(record) || definitionIdx >= len(record) {
			continue
		}

		headword := domain.Normalize(record[headwordIdx])
		definition := domain.Normalize(record[definitionIdx])
		if headword == "" || definition == "" {
			continue
		}

		stats.LinesKept++
		entries = append(entries, domain.DictionaryEntry{
			Headword:   headword,
			Definition: definition,
			Source:     source,
		})
	}

	return entries, stats, nil
}

// parseDelimited reads " - " separated lines. Line numbers in Source are
// 1-based and count every physical line, blank ones included.
func parseDelimited(r io.Reader, source string) ([]domain.DictionaryEntry, Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries []domain.DictionaryEntry
		stats   Stats
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		stats.LinesSeen++
		parts := strings.SplitN(line, pairSeparator, 2)
		if len(parts) != 2 {
			continue
		}

		headword := domain.Normalize(parts[0])
		definition := domain.Normalize(parts[1])
		if headword == "" || definition == "" {
			continue
		}

		stats.LinesKept++
		entries = append(entries, domain.DictionaryEntry{
			Headword:   headword,
			Definition: definition,
			Source:     fmt.Sprintf("%s:L%d", source, lineNum),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("scan file: %w", err)
	}

	return entries, stats, nil
}
