package ingest

import (
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestNGramsBigrams(t *testing.T) {
	got := slices.Collect(NGrams("the quick fox", 2))
	want := []string{"the quick", "quick fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NGrams(n=2) = %v, want %v", got, want)
	}
}

func TestNGramsWindowCount(t *testing.T) {
	// W words must yield exactly max(0, W-n+1) tokens.
	line := "a b c d e f g"
	w := len(strings.Fields(line))

	for n := 1; n <= w+2; n++ {
		got := len(slices.Collect(NGrams(line, n)))
		want := w - n + 1
		if want < 0 {
			want = 0
		}
		if got != want {
			t.Errorf("n=%d: got %d tokens, want %d", n, got, want)
		}
	}
}

func TestNGramsShortLine(t *testing.T) {
	if got := slices.Collect(NGrams("solo", 3)); len(got) != 0 {
		t.Errorf("expected no partial n-grams, got %v", got)
	}
	if got := slices.Collect(NGrams("", 1)); len(got) != 0 {
		t.Errorf("empty line should yield nothing, got %v", got)
	}
}

func TestNGramsRestartable(t *testing.T) {
	seq := NGrams("one two three four", 2)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second iteration %v differs from first %v", second, first)
	}
}

func TestNGramsEarlyStop(t *testing.T) {
	var got []string
	for tok := range NGrams("a b c d", 1) {
		got = append(got, tok)
		if len(got) == 2 {
			break
		}
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("early stop collected %v", got)
	}
}

func TestWordsDegeneratesToUnigrams(t *testing.T) {
	got := slices.Collect(Words("The quick  fox"))
	want := []string{"The", "quick", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}
