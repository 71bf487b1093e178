package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fijian-nlp/dataprep/internal/domain"
)

func TestBuild_OneEntryOneSentence(t *testing.T) {
	t.Parallel()

	entries := []domain.DictionaryEntry{
		{Headword: "bula", Definition: "hello or life", Source: "dict.csv"},
	}
	sentences := []domain.Sentence{
		{Text: "Bula vinaka vei kemuni"},
	}

	examples := Build(entries, sentences)
	require.Len(t, examples, 2)

	def := examples[0]
	assert.Equal(t, "Define the Fijian word: bula", def.Instruction)
	assert.Equal(t, "bula", def.Input)
	assert.Equal(t, "hello or life", def.Output)
	assert.Equal(t, domain.TaskTypeDefinition, def.TaskType)

	comp := examples[1]
	assert.Equal(t, "Complete the following Fijian text:", comp.Instruction)
	assert.Equal(t, domain.TaskTypeCompletion, comp.TaskType)
	assert.Equal(t, sentences[0].Text, comp.Input+comp.Output)
}

func TestBuild_DictionaryExamplesFirst(t *testing.T) {
	t.Parallel()

	entries := []domain.DictionaryEntry{
		{Headword: "bula", Definition: "hello"},
		{Headword: "moce", Definition: "goodbye"},
	}
	sentences := []domain.Sentence{
		{Text: "Na noda vanua e vinaka"},
		{Text: "Era lako mai na gone"},
	}

	examples := Build(entries, sentences)
	require.Len(t, examples, 4)

	assert.Equal(t, domain.TaskTypeDefinition, examples[0].TaskType)
	assert.Equal(t, domain.TaskTypeDefinition, examples[1].TaskType)
	assert.Equal(t, domain.TaskTypeCompletion, examples[2].TaskType)
	assert.Equal(t, domain.TaskTypeCompletion, examples[3].TaskType)

	// Input order survives within each group.
	assert.Equal(t, "bula", examples[0].Input)
	assert.Equal(t, "moce", examples[1].Input)
	assert.Contains(t, examples[2].Input, "Na noda")
	assert.Contains(t, examples[3].Input, "Era lako")
}

func TestBuild_CompletionSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantInput  string
		wantOutput string
	}{
		{
			name:       "odd rune count",
			text:       "bula vinaka", // 11 runes, mid 5
			wantInput:  "bula ",
			wantOutput: "vinaka",
		},
		{
			name:       "odd rune count mid word",
			text:       "Moce mada", // 9 runes, mid 4
			wantInput:  "Moce",
			wantOutput: " mada",
		},
		{
			name:       "even rune count",
			text:       "odrau2", // 6 runes, mid 3
			wantInput:  "odr",
			wantOutput: "au2",
		},
		{
			name:       "macron vowels split on rune boundary",
			text:       "tōkā levu", // 9 runes, mid 4
			wantInput:  "tōkā",
			wantOutput: " levu",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			examples := Build(nil, []domain.Sentence{{Text: tt.text}})
			require.Len(t, examples, 1)

			assert.Equal(t, tt.wantInput, examples[0].Input)
			assert.Equal(t, tt.wantOutput, examples[0].Output)
			assert.Equal(t, tt.text, examples[0].Input+examples[0].Output)
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	examples := Build(nil, nil)
	assert.Empty(t, examples)
}
