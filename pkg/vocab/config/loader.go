package config

import (
	"fmt"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/ingest"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/internalerr"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/stoplist"
)

// Loader loads the word lists and constructs filtering components.
type Loader struct {
	StopwordsPath string
	ProfanityPath string
}

// Components holds the loaded exclusion sets and the word filter
// built from them.
type Components struct {
	Stopwords *stoplist.Set
	Profanity *stoplist.Set
	Filter    *ingest.Filter
}

// Load reads both word lists and returns initialized components.
// A missing list is a configuration error, not an empty set: the
// filter must never run with a partial exclusion list.
func (l *Loader) Load() (*Components, error) {
	if l.StopwordsPath == "" {
		return nil, fmt.Errorf("%w: stopword list path required", internalerr.ErrInvalidConfig)
	}
	if l.ProfanityPath == "" {
		return nil, fmt.Errorf("%w: profanity list path required", internalerr.ErrInvalidConfig)
	}

	stops, err := LoadWordlist(l.StopwordsPath)
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	profanity, err := LoadWordlist(l.ProfanityPath)
	if err != nil {
		return nil, fmt.Errorf("load profanity list: %w", err)
	}

	comp := &Components{
		Stopwords: stoplist.New(stops.Terms),
		Profanity: stoplist.New(profanity.Terms),
	}
	comp.Filter = ingest.NewFilter(comp.Stopwords, comp.Profanity)
	return comp, nil
}
