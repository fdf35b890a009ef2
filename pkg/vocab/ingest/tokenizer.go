package ingest

import (
	"iter"
	"strings"
)

// NGrams returns the contiguous n-word windows of a cleaned line as a
// lazy sequence. The line is split on whitespace; each window joins n
// consecutive words with a single space, preserving word order and
// case. A line with fewer than n words yields nothing; there are no
// partial windows. The sequence is finite and restartable: ranging
// over it again replays the same tokens without re-cleaning the text.
func NGrams(text string, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n < 1 {
			return
		}
		words := strings.Fields(text)
		for i := 0; i+n <= len(words); i++ {
			tok := words[i]
			if n > 1 {
				tok = strings.Join(words[i:i+n], " ")
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Words is the n=1 case of NGrams: the whitespace-delimited words of
// the line, in order.
func Words(text string) iter.Seq[string] {
	return NGrams(text, 1)
}
