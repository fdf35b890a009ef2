package vocab

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/freq"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/ingest"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/internalerr"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/normalize"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/sample"
)

// Granularity selects the n-gram width of one token population.
type Granularity int

const (
	Unigrams  Granularity = 1
	Bigrams   Granularity = 2
	Trigrams  Granularity = 3
	Quadgrams Granularity = 4
)

func (g Granularity) String() string {
	switch g {
	case Unigrams:
		return "words"
	case Bigrams:
		return "bigrams"
	case Trigrams:
		return "trigrams"
	case Quadgrams:
		return "quadgrams"
	}
	return fmt.Sprintf("%d-grams", int(g))
}

// Options configures a Pipeline. Everything that affects the output
// (seed, fraction, thresholds, exclusion sets) is explicit here;
// nothing reads process-global state, so parallel runs with different
// settings stay isolated and reproducible.
type Options struct {
	// SampleFraction of each source corpus to analyze, in (0,1].
	SampleFraction float64
	// Seed for the per-source sampler.
	Seed int64
	// Filter applied to the unigram path only.
	Filter *ingest.Filter
	// WordThresholds are the coverage thresholds for unigrams
	// (default 0.5 and 0.9).
	WordThresholds []float64
	// PhraseThreshold is the single threshold for n-gram coverage
	// (default 0.9).
	PhraseThreshold float64
	// Workers bounds the counting parallelism (default NumCPU).
	Workers int
}

// Pipeline runs the full analysis: per-source sampling, cleanup,
// tokenization at four granularities, counting, and coverage
// selection.
type Pipeline struct {
	opts Options
}

// New validates the options and creates a Pipeline.
func New(opts Options) (*Pipeline, error) {
	if opts.Filter == nil {
		return nil, fmt.Errorf("%w: word filter required", internalerr.ErrInvalidConfig)
	}
	if opts.SampleFraction <= 0 || opts.SampleFraction > 1 {
		return nil, fmt.Errorf("%w: sample fraction %v outside (0,1]", internalerr.ErrInvalidConfig, opts.SampleFraction)
	}
	if len(opts.WordThresholds) == 0 {
		opts.WordThresholds = []float64{0.5, 0.9}
	}
	if opts.PhraseThreshold == 0 {
		opts.PhraseThreshold = 0.9
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Pipeline{opts: opts}, nil
}

// Coverage is one computed coverage set plus the statistics of the
// token population it came from.
type Coverage struct {
	Granularity    Granularity
	Threshold      float64
	TotalTokens    int64 // token occurrences in the population
	DistinctTokens int   // vocabulary size of the full table
	Entries        []freq.CoverageEntry
}

// Size is the headline statistic: how many distinct tokens carry
// Threshold of the population's mass.
func (c Coverage) Size() int {
	return len(c.Entries)
}

// Result is the output of one analysis run.
type Result struct {
	SampleLines int
	Coverage    []Coverage
}

// Analyze runs the pipeline over the loaded corpora. Each source is
// sampled independently at the configured fraction and seed, the
// samples are tagged and cleaned, and the four granularities are then
// counted concurrently over the shared cleaned lines. Given the same
// corpora and options, the result is byte-identical across runs.
// Empty input is fine: every coverage set simply comes back empty.
func (p *Pipeline) Analyze(corpora []corpus.Corpus) Result {
	records := p.sampleAll(corpora)

	cleaned := make([]string, 0, len(records))
	for _, r := range records {
		if line := normalize.Clean(r.Text); line != "" {
			cleaned = append(cleaned, line)
		}
	}

	granularities := []Granularity{Unigrams, Bigrams, Trigrams, Quadgrams}

	// The four populations are independent; count them concurrently
	// over the shared read-only sample.
	tables := make([]*freq.Table, len(granularities))
	var wg sync.WaitGroup
	for i, g := range granularities {
		wg.Add(1)
		go func(i int, g Granularity) {
			defer wg.Done()
			tables[i] = p.count(cleaned, g)
		}(i, g)
	}
	wg.Wait()

	res := Result{SampleLines: len(records)}
	for i, g := range granularities {
		entries := tables[i].Entries()
		for _, tau := range p.thresholdsFor(g) {
			res.Coverage = append(res.Coverage, Coverage{
				Granularity:    g,
				Threshold:      tau,
				TotalTokens:    tables[i].Total(),
				DistinctTokens: tables[i].Distinct(),
				Entries:        freq.Coverage(entries, tau),
			})
		}
	}
	return res
}

// sampleAll draws each source's sample separately, never from the
// union, and tags every line with its source.
func (p *Pipeline) sampleAll(corpora []corpus.Corpus) []corpus.Record {
	var records []corpus.Record
	for _, c := range corpora {
		for _, line := range sample.Lines(c.Lines, p.opts.SampleFraction, p.opts.Seed) {
			records = append(records, corpus.Record{Text: line, Source: c.Name})
		}
	}
	return records
}

func (p *Pipeline) thresholdsFor(g Granularity) []float64 {
	if g == Unigrams {
		return p.opts.WordThresholds
	}
	return []float64{p.opts.PhraseThreshold}
}

// count builds the frequency table for one granularity. Lines are
// partitioned across workers with a local table each; the merged
// result is identical to a serial count, so the deterministic ranking
// downstream is unaffected by the parallelism.
func (p *Pipeline) count(lines []string, g Granularity) *freq.Table {
	workers := p.opts.Workers
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers <= 1 {
		return p.countChunk(lines, g)
	}

	chunk := (len(lines) + workers - 1) / workers
	parts := make([]*freq.Table, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := min(w*chunk, len(lines))
		hi := min(lo+chunk, len(lines))
		wg.Add(1)
		go func(w int, lines []string) {
			defer wg.Done()
			parts[w] = p.countChunk(lines, g)
		}(w, lines[lo:hi])
	}
	wg.Wait()

	merged := freq.NewTable()
	for _, part := range parts {
		merged.Merge(part)
	}
	return merged
}

func (p *Pipeline) countChunk(lines []string, g Granularity) *freq.Table {
	t := freq.NewTable()
	for _, line := range lines {
		seq := ingest.NGrams(line, int(g))
		if g == Unigrams {
			// Stopword and profanity removal applies to words only;
			// phrase statistics keep their function words.
			seq = p.opts.Filter.Words(seq)
		}
		t.AddSeq(seq)
	}
	return t
}
