package corpus

// Record is one line of source text tagged with the corpus it came
// from. Records are immutable; the pipeline consumes them and moves on.
type Record struct {
	Text   string
	Source string
}

// Corpus is a named, ordered collection of raw text lines as loaded
// from one source file.
type Corpus struct {
	Name  string
	Lines []string
}

// Summary describes one source corpus for reporting: file size, line
// count, and total character and word counts over all lines.
type Summary struct {
	Source    string
	SizeBytes int64
	Lines     int64
	Chars     int64
	Words     int64
}
