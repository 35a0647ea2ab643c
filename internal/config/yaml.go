package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexicheck/symspell/internal/symspell"
)

// File is the on-disk shape of a corrector config file: the symspell.Config
// fields plus the sources the builder should load from, in order.
type File struct {
	MaxDictionaryEditDistance int      `yaml:"maxDictionaryEditDistance"`
	PrefixLength              int      `yaml:"prefixLength"`
	CountThreshold            uint64   `yaml:"countThreshold"`
	InitialCapacity           int      `yaml:"initialCapacity"`
	CorpusSize                float64  `yaml:"corpusSize"`
	DictionaryPaths           []string `yaml:"dictionaryPaths"`
	CorpusPaths               []string `yaml:"corpusPaths"`
}

// LoadConfig reads and parses a YAML config file, filling unset numeric
// fields from symspell.DefaultConfig so a minimal file (or none of the
// tuning knobs at all) still produces a valid Config.
func LoadConfig(path string) (File, error) {
	defaults := symspell.DefaultConfig()
	f := File{
		MaxDictionaryEditDistance: defaults.MaxDictionaryEditDistance,
		PrefixLength:              defaults.PrefixLength,
		CountThreshold:            defaults.CountThreshold,
		InitialCapacity:           defaults.InitialCapacity,
		CorpusSize:                defaults.CorpusSize,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return f, nil
}

// Symspell converts a parsed File into a symspell.Config.
func (f File) Symspell() symspell.Config {
	return symspell.Config{
		MaxDictionaryEditDistance: f.MaxDictionaryEditDistance,
		PrefixLength:              f.PrefixLength,
		CountThreshold:            f.CountThreshold,
		InitialCapacity:           f.InitialCapacity,
		CorpusSize:                f.CorpusSize,
	}
}
