package domain

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim and collapse spaces", input: "  Bula   vinaka  ", want: "Bula vinaka"},
		{name: "strip html tags", input: "<p>Bula vinaka</p>", want: "Bula vinaka"},
		{name: "tag with attributes", input: `<a href="x">bula</a> vinaka`, want: "bula vinaka"},
		{name: "tabs and newlines", input: "bula\n\tvinaka", want: "bula vinaka"},
		{name: "strip disallowed symbols", input: "Bula @vinaka#", want: "Bula vinaka"},
		{name: "symbol between spaces", input: "bula @ vinaka", want: "bula vinaka"},
		{name: "allowed punctuation kept", input: "e dua, e rua; e tolu!", want: "e dua, e rua; e tolu!"},
		{name: "hyphen and apostrophe kept", input: "vaka-viti e'ena", want: "vaka-viti e'ena"},
		{name: "digits and underscore kept", input: "ka 123_tolu", want: "ka 123_tolu"},
		{name: "parentheses kept", input: "io (vinaka)", want: "io (vinaka)"},
		{name: "decomposed macrons composed", input: "tōkā", want: "tōkā"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "only symbols", input: "@#$%", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"  Bula   vinaka  ",
		"<p>Bula vinaka</p>",
		"bula @ vinaka",
		"e dua, e rua; e tolu!",
		"tōkā <b>levu</b>",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalize_OutputShape(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<div>Na <b>gone</b>   lailai</div>",
		"  bula\t\tvinaka\n",
		"ka<br/>rua",
	}
	for _, input := range inputs {
		got := Normalize(input)
		if strings.Contains(got, "<") || strings.Contains(got, ">") {
			t.Errorf("Normalize(%q) = %q, contains tag characters", input, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Normalize(%q) = %q, contains a whitespace run", input, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("Normalize(%q) = %q, not trimmed", input, got)
		}
	}
}
