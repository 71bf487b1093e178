package domain

// DictionaryEntry is one cleaned headword/definition pair extracted from a
// dictionary source file.
//
// Extractors only emit entries whose Headword and Definition are both
// non-empty after cleaning. Source identifies the origin file by base name,
// with a 1-based line number appended for line-delimited sources
// (e.g. "vocab_dict.txt:L12").
type DictionaryEntry struct {
	Headword   string `json:"fijian_word"`
	Definition string `json:"english_definition"`
	Source     string `json:"source"`
}

// Sentence is one cleaned and validated sentence extracted from a prose
// corpus file.
type Sentence struct {
	Text string `json:"text"`
}

// TaskType labels the shape of a training example.
type TaskType string

const (
	TaskTypeDefinition TaskType = "definition"
	TaskTypeCompletion TaskType = "completion"
)

func (t TaskType) String() string { return string(t) }

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeDefinition, TaskTypeCompletion:
		return true
	}
	return false
}

// TrainingExample is one instruction-tuning record, derived either from a
// DictionaryEntry (definition task) or from a Sentence (completion task).
type TrainingExample struct {
	Instruction string   `json:"instruction"`
	Input       string   `json:"input"`
	Output      string   `json:"output"`
	TaskType    TaskType `json:"task_type"`
}

// RunStats accumulates counters over a single pipeline run.
//
// FilesProcessed counts every file visited during the input walk,
// regardless of how the file was routed. LinesProcessed counts every unit
// the extractors examined (tabular rows, delimited lines, sentence
// fragments), LinesCleaned the units kept after cleaning and validation,
// and LinesRemoved the rest, so LinesProcessed = LinesCleaned + LinesRemoved.
type RunStats struct {
	FilesProcessed int `json:"files_processed"`
	LinesProcessed int `json:"lines_processed"`
	LinesCleaned   int `json:"lines_cleaned"`
	LinesRemoved   int `json:"lines_removed"`
}
