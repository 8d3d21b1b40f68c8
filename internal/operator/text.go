package operator

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultGroupSize is the conventional five-letter cipher group.
const DefaultGroupSize = 5

// eszett has no single-letter upper case; operators keyed it as SZ.
var eszett = strings.NewReplacer("ß", "SZ", "ẞ", "SZ")

// Normalize folds text to the machine's keyboard: accents are stripped
// (decomposed and combining marks dropped), letters upper-cased, and
// everything that is not A-Z removed.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, eszett.Replace(text))
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToUpper(folded) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Group splits text into blocks of size letters separated by single spaces.
// A size of zero or less returns text unchanged.
func Group(text string, size int) string {
	if size <= 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/size)
	n := 0
	for _, r := range text {
		if n > 0 && n%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
