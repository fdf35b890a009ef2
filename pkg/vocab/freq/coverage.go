package freq

// CoverageEntry is one row of a coverage set: a ranked entry plus the
// running sum of proportions up to and including it.
type CoverageEntry struct {
	Token      string
	Count      int64
	Proportion float64
	Cumulative float64
}

// Coverage selects the maximal prefix of the ranked entries whose
// cumulative proportion stays at or below tau. The running sum is
// accumulated in the ranked order, so re-runs over the same table are
// bit-identical. The comparison is strict: no rounding is applied
// before testing against tau.
//
// Degenerate thresholds are defined, not errors: tau >= 1 keeps the
// whole table, tau <= 0 keeps nothing (the first entry's cumulative
// proportion is already above it), and empty input yields an empty
// set. The length of the result is the headline statistic: how many
// distinct tokens carry tau of the total mass.
func Coverage(entries []Entry, tau float64) []CoverageEntry {
	out := make([]CoverageEntry, 0, len(entries))

	var cum float64
	for _, e := range entries {
		cum += e.Proportion
		if tau < 1 && cum > tau {
			break
		}
		out = append(out, CoverageEntry{
			Token:      e.Token,
			Count:      e.Count,
			Proportion: e.Proportion,
			Cumulative: cum,
		})
	}
	return out
}
