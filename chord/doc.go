// Package chord implements the chord-symbol grammar: strict parsing,
// lenient OCR-repair parsing, and semitone transposition.
//
// The grammar accepts a root note (A-G), an optional accidental, an
// optional quality, an optional numeric extension, an optional "add"
// modifier, and an optional slash bass note. Parsing is strict by default:
// anything the grammar cannot match yields "absent" (ok == false), never a
// best-guess chord and never an error. [ParseLenient] first rewrites common
// OCR damage (spelled-out "minor", Unicode accidental glyphs, a truncated
// "di") and then runs the same strict grammar, so the round-trip property
// Parse(s).String() == s holds for every canonical string the strict path
// accepts.
//
// Serialization lives on [model.Chord.String]; this package guarantees that
// parsing and re-serializing any accepted spelling produces the canonical
// one.
package chord
