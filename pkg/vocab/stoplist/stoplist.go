package stoplist

import (
	"sort"
	"strings"
)

// Set is a read-only word exclusion list. The pipeline builds one Set
// for stopwords and one for profanity and never mutates them after
// construction, so a Set is safe for concurrent readers.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words, lowercasing each entry.
func New(words []string) *Set {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return &Set{words: set}
}

// Contains checks a word against the set; the comparison is
// case-normalized exact match, no stemming.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// All returns the words sorted lexicographically.
func (s *Set) All() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
