// Package lang detects the writing direction and probable language of
// lyric text. The aligner needs the direction to pick its matching path;
// the assembled document records the language tag.
package lang

import (
	"unicode"

	"golang.org/x/text/language"
)

// Direction is the dominant writing direction of a piece of text.
type Direction int

const (
	// LTR (left-to-right) covers Latin, Cyrillic, Greek, CJK, and most
	// other scripts.
	LTR Direction = iota
	// RTL (right-to-left) covers Arabic, Hebrew, and related scripts.
	RTL
	// Neutral means no strong directional characters were found.
	Neutral
)

// String returns "LTR", "RTL", or "Neutral".
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "Neutral"
	}
}

// Detect returns the dominant direction of text by counting strong
// directional characters. Digits, punctuation, whitespace, and symbols do
// not count; if nothing counts, the result is Neutral.
func Detect(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltr, rtl := 0, 0
	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}

	if ltr == 0 && rtl == 0 {
		return Neutral
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

// HasRTL reports whether text contains any right-to-left character at all.
// Chord symbols are always written left-to-right, so a single RTL rune in a
// lyric line is enough to require the RTL alignment path.
func HasRTL(text string) bool {
	for _, r := range text {
		if CharDirection(r) == RTL {
			return true
		}
	}
	return false
}

// CharDirection returns the inherent direction of a single rune.
func CharDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}
	if isArabic(r) || isHebrew(r) {
		return RTL
	}
	return LTR
}

// GuessLanguage maps the dominant script of text to a coarse BCP 47 tag.
// It is a best-effort hint for the document metadata, not a full language
// identifier: Latin-script lyrics report English, and an unrecognized
// script reports the undetermined tag.
func GuessLanguage(text string) language.Tag {
	counts := map[language.Tag]int{}
	for _, r := range text {
		switch {
		case isHebrew(r):
			counts[language.Hebrew]++
		case isArabic(r):
			counts[language.Arabic]++
		case isCyrillic(r):
			counts[language.Russian]++
		case isGreek(r):
			counts[language.Greek]++
		case isCJK(r):
			counts[language.Chinese]++
		case r < 0x250 && unicode.IsLetter(r):
			counts[language.English]++
		}
	}

	best, bestCount := language.Und, 0
	for tag, n := range counts {
		if n > bestCount {
			best, bestCount = tag, n
		}
	}
	return best
}

// isArabic reports whether r is in an Arabic Unicode block, including the
// presentation forms produced by shaping-aware OCR engines.
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// isHebrew reports whether r is in a Hebrew Unicode block.
func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

func isCyrillic(r rune) bool {
	return (r >= 0x0400 && r <= 0x04FF) ||
		(r >= 0x0500 && r <= 0x052F)
}

func isGreek(r rune) bool {
	return (r >= 0x0370 && r <= 0x03FF) ||
		(r >= 0x1F00 && r <= 0x1FFF)
}

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3040 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF)
}
