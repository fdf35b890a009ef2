package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean rewrites one line of raw corpus text into its analyzable form.
// The rewrites run in a fixed order:
//
//  1. Drop every character that is neither a letter nor whitespace.
//     This squashes "http://x.co" into "httpxco", which is why the URL
//     pass has to come second: the scheme prefix survives the squash.
//  2. Drop every word that starts with an "http" prefix.
//  3. Transliterate each word to ASCII, dropping accents and any rune
//     with no base-character equivalent.
//  4. Drop every word that contains a doubled letter anywhere ("sooo",
//     "hahaa"). The match is literal adjacency, so ordinary words like
//     "coffee" are removed too. Quirk kept on purpose; see DESIGN.md.
//
// Words are re-joined with single spaces. Empty or whitespace-only
// input cleans to "", never an error. Clean is idempotent.
func Clean(text string) string {
	text = stripSymbols(text)

	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if strings.HasPrefix(strings.ToLower(w), "http") {
			continue
		}
		w = transliterate(w)
		if w == "" || hasDoubledLetter(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// stripSymbols removes every rune that is neither a letter nor whitespace.
// Digits and punctuation go away here, including the ones inside URLs.
func stripSymbols(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// hasDoubledLetter reports whether any rune appears twice in a row.
func hasDoubledLetter(word string) bool {
	var prev rune
	for i, r := range word {
		if i > 0 && r == prev {
			return true
		}
		prev = r
	}
	return false
}

// transliterate maps a word to its nearest ASCII form: decompose,
// strip combining marks, recompose, then drop whatever is still
// outside ASCII. The transform chain is stateful and not safe for
// concurrent reuse, so it is built per call.
func transliterate(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, word)
	if err != nil {
		folded = word
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
