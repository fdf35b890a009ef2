package sample

import (
	"math/rand"
	"sort"
)

// Lines draws floor(len(lines) * fraction) lines without replacement,
// using a PRNG seeded from seed alone. The same lines, fraction, and
// seed always yield the same subset, which downstream fixtures rely on.
// The selection is re-sorted into corpus order before returning.
//
// Each source corpus must be sampled with its own call (never the
// concatenated union) so that every source keeps its proportional
// representation under the caller's control.
func Lines(lines []string, fraction float64, seed int64) []string {
	if fraction <= 0 || len(lines) == 0 {
		return nil
	}
	if fraction > 1 {
		fraction = 1
	}

	k := int(float64(len(lines)) * fraction)
	if k == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	picked := rng.Perm(len(lines))[:k]
	sort.Ints(picked)

	out := make([]string, 0, k)
	for _, i := range picked {
		out = append(out, lines[i])
	}
	return out
}
