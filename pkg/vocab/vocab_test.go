package vocab

import (
	"math"
	"reflect"
	"testing"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/ingest"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/stoplist"
)

func testFilter() *ingest.Filter {
	return ingest.NewFilter(
		stoplist.New([]string{"the", "a", "and", "of", "in"}),
		stoplist.New([]string{"darn"}),
	)
}

func testCorpora() []corpus.Corpus {
	return []corpus.Corpus{
		{Name: "blogs", Lines: []string{
			"the quick brown fox jumps over the lazy dog",
			"a quick brown fox is quick",
			"the dog sleeps in the sun",
		}},
		{Name: "twitter", Lines: []string{
			"quick darn fox!!",
			"the sun and the dog",
		}},
	}
}

func newTestPipeline(t *testing.T, opts Options) *Pipeline {
	t.Helper()
	if opts.Filter == nil {
		opts.Filter = testFilter()
	}
	if opts.SampleFraction == 0 {
		opts.SampleFraction = 1.0
	}
	p, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	if _, err := New(Options{SampleFraction: 0.5}); err == nil {
		t.Error("expected error for missing filter")
	}
	if _, err := New(Options{Filter: testFilter(), SampleFraction: 0}); err == nil {
		t.Error("expected error for zero sample fraction")
	}
	if _, err := New(Options{Filter: testFilter(), SampleFraction: 1.2}); err == nil {
		t.Error("expected error for fraction above 1")
	}
}

func TestAnalyzeCoverageLayout(t *testing.T) {
	p := newTestPipeline(t, Options{})
	res := p.Analyze(testCorpora())

	if res.SampleLines != 5 {
		t.Errorf("SampleLines = %d, want 5", res.SampleLines)
	}

	// Unigrams at both word thresholds, then each n-gram at the phrase
	// threshold, in granularity order.
	wantLayout := []struct {
		g   Granularity
		tau float64
	}{
		{Unigrams, 0.5},
		{Unigrams, 0.9},
		{Bigrams, 0.9},
		{Trigrams, 0.9},
		{Quadgrams, 0.9},
	}
	if len(res.Coverage) != len(wantLayout) {
		t.Fatalf("got %d coverage sets, want %d", len(res.Coverage), len(wantLayout))
	}
	for i, want := range wantLayout {
		got := res.Coverage[i]
		if got.Granularity != want.g || got.Threshold != want.tau {
			t.Errorf("coverage[%d] = %s@%v, want %s@%v",
				i, got.Granularity, got.Threshold, want.g, want.tau)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	opts := Options{Filter: testFilter(), SampleFraction: 0.6, Seed: 42, Workers: 4}

	p1 := newTestPipeline(t, opts)
	p2 := newTestPipeline(t, opts)

	first := p1.Analyze(testCorpora())
	second := p2.Analyze(testCorpora())

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs with the same corpora, seed, and thresholds must match byte for byte")
	}
}

func TestAnalyzeFilterAppliesToWordsOnly(t *testing.T) {
	// tau=1 keeps the whole table, so we can inspect the full vocabulary.
	p := newTestPipeline(t, Options{WordThresholds: []float64{1.0}, PhraseThreshold: 1.0})
	res := p.Analyze(testCorpora())

	stops := map[string]bool{"the": true, "a": true, "and": true, "of": true, "in": true, "darn": true}

	for _, cov := range res.Coverage {
		switch cov.Granularity {
		case Unigrams:
			for _, e := range cov.Entries {
				if stops[e.Token] {
					t.Errorf("excluded word %q present in unigram table", e.Token)
				}
			}
		case Bigrams:
			// The n-gram path is deliberately unfiltered.
			found := false
			for _, e := range cov.Entries {
				if e.Token == "the quick" || e.Token == "the dog" {
					found = true
				}
			}
			if !found {
				t.Error("expected stopword-bearing bigrams in unfiltered phrase table")
			}
		}
	}
}

func TestAnalyzeMassConservation(t *testing.T) {
	p := newTestPipeline(t, Options{WordThresholds: []float64{1.0}, PhraseThreshold: 1.0})
	res := p.Analyze(testCorpora())

	for _, cov := range res.Coverage {
		if len(cov.Entries) == 0 {
			continue
		}
		var sum float64
		for _, e := range cov.Entries {
			sum += e.Proportion
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s: proportions sum to %.12f", cov.Granularity, sum)
		}
		if cov.Size() != cov.DistinctTokens {
			t.Errorf("%s: tau=1 coverage keeps %d of %d distinct tokens",
				cov.Granularity, cov.Size(), cov.DistinctTokens)
		}
	}
}

func TestAnalyzeMinimalPrefix(t *testing.T) {
	p := newTestPipeline(t, Options{WordThresholds: []float64{0.5}})

	// x appears twice of four kept words: proportion 0.5 exactly.
	res := p.Analyze([]corpus.Corpus{
		{Name: "tiny", Lines: []string{"x x y z"}},
	})

	words := res.Coverage[0]
	if words.Size() != 1 || words.Entries[0].Token != "x" {
		t.Fatalf("coverage@0.5 = %+v, want single entry for x", words.Entries)
	}
	if words.Entries[0].Cumulative != 0.5 {
		t.Errorf("cumulative = %v, want 0.5", words.Entries[0].Cumulative)
	}
}

func TestAnalyzeEmptyAndTinyInput(t *testing.T) {
	p := newTestPipeline(t, Options{SampleFraction: 0.1})

	// floor(3 * 0.1) = 0: the sampler returns nothing and every stage
	// downstream must tolerate the empty sample.
	res := p.Analyze(testCorpora()[:1])
	if res.SampleLines != 0 {
		t.Errorf("SampleLines = %d, want 0", res.SampleLines)
	}
	for _, cov := range res.Coverage {
		if cov.Size() != 0 || cov.TotalTokens != 0 {
			t.Errorf("%s@%v: expected empty coverage, got %d entries",
				cov.Granularity, cov.Threshold, cov.Size())
		}
	}

	res = p.Analyze(nil)
	for _, cov := range res.Coverage {
		if cov.Size() != 0 {
			t.Errorf("nil corpora: expected empty coverage for %s", cov.Granularity)
		}
	}
}
