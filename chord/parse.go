package chord

import (
	"strings"

	"github.com/chordsight/chordsight/model"
)

// validExtensions are the only numeric extensions the grammar accepts.
var validExtensions = map[int]bool{5: true, 6: true, 7: true, 9: true, 11: true, 13: true}

// validAdds are the only "add" modifiers the grammar accepts.
var validAdds = map[int]bool{2: true, 4: true, 6: true, 9: true}

// specialTokens map fixed spellings to their marker chords, bypassing the
// grammar entirely.
var specialTokens = map[string]model.Chord{
	"N.C.": model.NoChord(),
	"N.C":  model.NoChord(),
	"NC":   model.NoChord(),
	"n.c.": model.NoChord(),
	"x":    model.Muted(),
	"X":    model.Muted(),
}

// Parse matches s against the strict chord grammar. It returns the parsed
// chord and true on success, or the zero chord and false when s is not a
// valid chord symbol. It never returns an error: absence is the caller's
// decision to handle.
func Parse(s string) (model.Chord, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Chord{}, false
	}

	if special, ok := specialTokens[s]; ok {
		return special, true
	}

	// Root note is mandatory; fail fast without one.
	root := s[0]
	if root < 'A' || root > 'G' {
		return model.Chord{}, false
	}
	rest := s[1:]

	c := model.Chord{Kind: model.KindChord, Root: root}

	// Accidental. A "b" here is a flat unless it begins a quality keyword;
	// the keyword check keeps the rule explicit even though no current
	// keyword starts with "b".
	if strings.HasPrefix(rest, "#") {
		c.Accidental = model.Sharp
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "b") && !startsQualityKeyword(rest) {
		c.Accidental = model.Flat
		rest = rest[1:]
	}

	// Quality. Order matters: "dim" before "m" so "Cdim" is not read as
	// minor, and explicit "maj" before "m" so "Cmaj7" is not read as
	// "Cm" + garbage.
	switch {
	case strings.HasPrefix(rest, "dim"):
		c.Quality = model.Diminished
		rest = rest[3:]
	case strings.HasPrefix(rest, "maj"):
		c.Quality = model.Major
		c.ExplicitMajor = true
		rest = rest[3:]
	case strings.HasPrefix(rest, "m"):
		c.Quality = model.Minor
		rest = rest[1:]
		// Minor-major chords such as Cmmaj7: a minor triad carrying an
		// explicitly major extension.
		if strings.HasPrefix(rest, "maj") {
			c.ExplicitMajor = true
			rest = rest[3:]
		}
	case strings.HasPrefix(rest, "aug"):
		c.Quality = model.Augmented
		rest = rest[3:]
	case strings.HasPrefix(rest, "sus"):
		rest = rest[3:]
		switch {
		case strings.HasPrefix(rest, "2"):
			c.Quality = model.Sus2
			rest = rest[1:]
		case strings.HasPrefix(rest, "4"):
			c.Quality = model.Sus4
			rest = rest[1:]
		default:
			// Bare "sus" means sus4.
			c.Quality = model.Sus4
		}
	}

	// Slash bass comes last in the input; peel it off before the middle.
	if idx := strings.LastIndexByte(rest, '/'); idx >= 0 {
		bass := rest[idx+1:]
		rest = rest[:idx]
		if bass == "" || bass[0] < 'A' || bass[0] > 'G' {
			return model.Chord{}, false
		}
		// Only the letter is kept; an accidental on the bass is dropped.
		switch bass[1:] {
		case "", "#", "b":
		default:
			return model.Chord{}, false
		}
		c.Bass = bass[0]
	}

	// Numeric extension, unless the quality already consumed its digits
	// (sus2/sus4).
	digits := leadingDigits(rest)
	if digits != "" {
		n := atoiDigits(digits)
		if !validExtensions[n] {
			return model.Chord{}, false
		}
		c.Extension = n
		rest = rest[len(digits):]
	}

	// "add" modifier.
	if strings.HasPrefix(rest, "add") {
		rest = rest[3:]
		digits := leadingDigits(rest)
		if digits == "" {
			return model.Chord{}, false
		}
		n := atoiDigits(digits)
		if !validAdds[n] {
			return model.Chord{}, false
		}
		c.Add = n
		rest = rest[len(digits):]
	}

	// Anything left over means the string is not a chord.
	if rest != "" {
		return model.Chord{}, false
	}

	return c, true
}

// IsChord reports whether s parses under the strict grammar.
func IsChord(s string) bool {
	_, ok := Parse(s)
	return ok
}

// startsQualityKeyword reports whether s begins with one of the quality
// keywords that would make a leading "b" part of a word instead of a flat.
func startsQualityKeyword(s string) bool {
	for _, kw := range []string{"maj", "dim", "aug"} {
		if strings.HasPrefix(s, kw) {
			return true
		}
	}
	return false
}

// leadingDigits returns the run of ASCII digits at the start of s.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// atoiDigits converts a short digit run; inputs are pre-validated.
func atoiDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
