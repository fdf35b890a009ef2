package textfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
)

// Corpus files can carry very long lines (blog posts are single lines),
// so the scanner gets a generous buffer.
const scannerBufSize = 4 * 1024 * 1024

// Load reads a newline-delimited corpus file into memory and computes
// its summary. NUL bytes are stripped from each line; the raw dumps
// contain them and they poison downstream string handling.
func Load(name, path string) (corpus.Corpus, corpus.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return corpus.Corpus{}, corpus.Summary{}, fmt.Errorf("open corpus %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return corpus.Corpus{}, corpus.Summary{}, fmt.Errorf("stat corpus %s: %w", name, err)
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, scannerBufSize), scannerBufSize)

	c := corpus.Corpus{Name: name}
	sum := corpus.Summary{Source: name, SizeBytes: info.Size()}

	for sc.Scan() {
		line := strings.ReplaceAll(sc.Text(), "\x00", "")
		c.Lines = append(c.Lines, line)
		sum.Lines++
		sum.Chars += int64(utf8.RuneCountInString(line))
		sum.Words += int64(len(strings.Fields(line)))
	}
	if err := sc.Err(); err != nil {
		return corpus.Corpus{}, corpus.Summary{}, fmt.Errorf("read corpus %s: %w", name, err)
	}

	return c, sum, nil
}
