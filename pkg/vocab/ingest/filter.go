package ingest

import (
	"iter"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/stoplist"
)

// Filter removes word tokens that appear in the stopword or profanity
// set. It applies to the unigram path only: n-gram sequences are left
// unfiltered so phrase statistics keep their function words.
type Filter struct {
	stopwords *stoplist.Set
	profanity *stoplist.Set
}

// NewFilter creates a filter over the two exclusion sets. Both sets
// are required; the config loader refuses to construct a pipeline
// without them.
func NewFilter(stopwords, profanity *stoplist.Set) *Filter {
	return &Filter{stopwords: stopwords, profanity: profanity}
}

// Words returns the subsequence of words not present in either set.
// Matching is case-normalized and exact, no stemming.
func (f *Filter) Words(words iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for w := range words {
			if f.stopwords.Contains(w) || f.profanity.Contains(w) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}
