package freq

import (
	"iter"
	"sort"
)

// Table accumulates occurrence counts for a multiset of tokens.
// Counting is linear in the input; storage is linear in the number of
// distinct tokens. A Table is not safe for concurrent writers; for
// parallel counting, give each worker its own Table and Merge them.
type Table struct {
	counts map[string]int64
	total  int64
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int64)}
}

// Add counts one occurrence of token.
func (t *Table) Add(token string) {
	if token == "" {
		return
	}
	t.counts[token]++
	t.total++
}

// AddSeq counts every token produced by the sequence.
func (t *Table) AddSeq(tokens iter.Seq[string]) {
	for tok := range tokens {
		t.Add(tok)
	}
}

// Merge folds another table's counts into this one. Used by
// partition-then-merge counting: the merged table is identical to one
// built serially, so the ranked order downstream is unaffected.
func (t *Table) Merge(other *Table) {
	for tok, n := range other.counts {
		t.counts[tok] += n
	}
	t.total += other.total
}

// Total returns the number of token occurrences counted.
func (t *Table) Total() int64 {
	return t.total
}

// Distinct returns the number of distinct tokens.
func (t *Table) Distinct() int {
	return len(t.counts)
}

// Count returns the occurrence count for one token.
func (t *Table) Count(token string) int64 {
	return t.counts[token]
}

// Entry is one ranked row of a frequency table.
type Entry struct {
	Token      string
	Count      int64
	Proportion float64
}

// Entries returns the ranked table: proportion descending, ties broken
// by count descending and then by token ascending. Proportions share
// one total, so the proportion and count orderings coincide; the
// lexical tie-break is what makes the order deterministic. Never rely
// on map iteration or an unstable sort here.
func (t *Table) Entries() []Entry {
	if t.total == 0 {
		return nil
	}

	out := make([]Entry, 0, len(t.counts))
	total := float64(t.total)
	for tok, n := range t.counts {
		out = append(out, Entry{Token: tok, Count: n, Proportion: float64(n) / total})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	return out
}
