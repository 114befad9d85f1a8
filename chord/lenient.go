package chord

import (
	"strings"

	"github.com/chordsight/chordsight/model"
)

// ocrRewrites are applied, in order, before the strict parse. Each one
// repairs a substring the OCR engine (or a human) commonly produces in
// place of the canonical spelling.
var ocrRewrites = [...]struct{ from, to string }{
	{"♯", "#"}, // MUSIC SHARP SIGN
	{"♭", "b"}, // MUSIC FLAT SIGN
	{"minor", "m"},
	{"Minor", "m"},
	{"MINOR", "m"},
}

// ParseLenient rewrites common OCR-garbled substrings and then runs the
// strict grammar. It is the pre-pass used on recognized text; saved
// documents go through [Parse] alone so canonical spellings stay canonical.
func ParseLenient(s string) (model.Chord, bool) {
	s = strings.TrimSpace(s)

	for _, rw := range ocrRewrites {
		s = strings.ReplaceAll(s, rw.from, rw.to)
	}

	// A truncated "di" at the end of the token is a clipped "dim".
	if strings.HasSuffix(s, "di") {
		s += "m"
	}

	return Parse(s)
}

// IsChordLenient reports whether s parses after OCR repair. The line
// classifier uses this so noisy chord lines are still recognized as such.
func IsChordLenient(s string) bool {
	_, ok := ParseLenient(s)
	return ok
}
