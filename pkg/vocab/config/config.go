package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/internalerr"
)

// Source names one corpus file to analyze.
type Source struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Analysis is the top-level analysis configuration.
type Analysis struct {
	Sources         []Source  `yaml:"sources"`
	SampleFraction  float64   `yaml:"sample_fraction"`
	Seed            int64     `yaml:"seed"`
	WordThresholds  []float64 `yaml:"word_thresholds"`
	PhraseThreshold float64   `yaml:"phrase_threshold"`
	StopwordsPath   string    `yaml:"stopwords"`
	ProfanityPath   string    `yaml:"profanity"`
}

// LoadAnalysis loads the analysis configuration from a YAML file and
// fills in defaults for unset numeric fields.
func LoadAnalysis(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var a Analysis
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if a.SampleFraction == 0 {
		a.SampleFraction = 0.1
	}
	if len(a.WordThresholds) == 0 {
		a.WordThresholds = []float64{0.5, 0.9}
	}
	if a.PhraseThreshold == 0 {
		a.PhraseThreshold = 0.9
	}

	if err := a.validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *Analysis) validate() error {
	if len(a.Sources) == 0 {
		return fmt.Errorf("%w: no sources configured", internalerr.ErrInvalidConfig)
	}
	for _, s := range a.Sources {
		if s.Name == "" || s.Path == "" {
			return fmt.Errorf("%w: source needs both name and path", internalerr.ErrInvalidConfig)
		}
	}
	if a.SampleFraction <= 0 || a.SampleFraction > 1 {
		return fmt.Errorf("%w: sample_fraction %v outside (0,1]", internalerr.ErrInvalidConfig, a.SampleFraction)
	}
	return nil
}

// Wordlist is the on-disk form of a stopword or profanity list.
type Wordlist struct {
	Terms []string `yaml:"terms"`
}

// LoadWordlist loads an exclusion word list from a YAML file.
func LoadWordlist(path string) (*Wordlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wl Wordlist
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, err
	}

	return &wl, nil
}
