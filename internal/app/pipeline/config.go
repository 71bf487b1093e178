package pipeline

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds pipeline processing settings.
type Config struct {
	TextExtensions   []string `yaml:"text_extensions"   env:"PIPELINE_TEXT_EXTENSIONS"   env-default:".txt,.csv"`
	HeadwordColumn   string   `yaml:"headword_column"   env:"PIPELINE_HEADWORD_COLUMN"   env-default:"fijian_word"`
	DefinitionColumn string   `yaml:"definition_column" env:"PIPELINE_DEFINITION_COLUMN" env-default:"english_definition"`
	DryRun           bool     `yaml:"dry_run"           env:"PIPELINE_DRY_RUN"`
}

// LoadConfig reads pipeline configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("pipeline config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("pipeline config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("pipeline config: read env: %w", err)
	}

	return &cfg, nil
}
