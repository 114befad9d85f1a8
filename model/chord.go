package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ChordKind discriminates the arms of the Chord variant.
type ChordKind int

const (
	// KindChord is a structured chord with a root note and modifiers.
	KindChord ChordKind = iota
	// KindNoChord is the explicit "no chord" marker (written "N.C.").
	KindNoChord
	// KindMuted is the muted-strings marker (written "x").
	KindMuted
	// KindRaw is an unparsed legacy chord string carried through verbatim.
	// It exists for documents saved before structured parsing; new output
	// never produces it.
	KindRaw
)

// Accidental is the optional sharp or flat on a note.
type Accidental int

const (
	AccidentalNone Accidental = iota
	Sharp
	Flat
)

// String returns the canonical spelling of the accidental ("#", "b", or "").
func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	default:
		return ""
	}
}

// Quality is the chord quality. The zero value is major.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
	Sus2
	Sus4
)

// String returns a readable name for the quality.
func (q Quality) String() string {
	switch q {
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case Augmented:
		return "augmented"
	case Sus2:
		return "sus2"
	case Sus4:
		return "sus4"
	default:
		return "major"
	}
}

// Chord is a tagged variant: a structured chord, a special marker, or a raw
// legacy string. Consumers must switch on Kind; fields other than Kind are
// meaningful only for the arm they belong to.
type Chord struct {
	Kind ChordKind

	// Structured arm (Kind == KindChord).
	Root       byte // 'A'..'G'
	Accidental Accidental
	Quality    Quality
	Extension  int  // 0 = none; otherwise one of 5, 6, 7, 9, 11, 13
	Add        int  // 0 = none; otherwise one of 2, 4, 6, 9
	Bass       byte // 0 = none; otherwise 'A'..'G' (slash chord)

	// ExplicitMajor records that "maj" was written out, which distinguishes
	// C7 (dominant) from Cmaj7 and makes minor-major chords (Cmmaj7)
	// representable.
	ExplicitMajor bool

	// Raw arm (Kind == KindRaw).
	Raw string
}

// NoChord returns the "no chord" marker.
func NoChord() Chord {
	return Chord{Kind: KindNoChord}
}

// Muted returns the muted-strings marker.
func Muted() Chord {
	return Chord{Kind: KindMuted}
}

// RawChord wraps an unparsed legacy chord string.
func RawChord(s string) Chord {
	return Chord{Kind: KindRaw, Raw: s}
}

// String renders the chord in its single canonical spelling. Parsing a valid
// chord string and rendering it again always yields the same text, even when
// the input used a synonym or a Unicode accidental glyph.
func (c Chord) String() string {
	switch c.Kind {
	case KindNoChord:
		return "N.C."
	case KindMuted:
		return "x"
	case KindRaw:
		return c.Raw
	}

	out := string(c.Root) + c.Accidental.String()

	switch c.Quality {
	case Minor:
		out += "m"
	case Diminished:
		out += "dim"
	case Augmented:
		out += "aug"
	case Sus2:
		out += "sus2"
	case Sus4:
		out += "sus4"
	}

	// "maj" is only written when it was explicit and carries an extension:
	// C and Cmaj are both canonical "C", but Cmaj7 keeps its "maj".
	if c.ExplicitMajor && c.Extension != 0 && (c.Quality == Major || c.Quality == Minor) {
		out += "maj"
	}

	if c.Extension != 0 {
		out += strconv.Itoa(c.Extension)
	}
	if c.Add != 0 {
		out += "add" + strconv.Itoa(c.Add)
	}
	if c.Bass != 0 {
		out += "/" + string(c.Bass)
	}

	return out
}

// chordJSON is the wire form of the structured arm.
type chordJSON struct {
	Root          string `json:"root,omitempty"`
	Accidental    string `json:"accidental,omitempty"`
	Quality       string `json:"quality,omitempty"`
	Extension     int    `json:"extension,omitempty"`
	Add           int    `json:"add,omitempty"`
	Bass          string `json:"bass,omitempty"`
	ExplicitMajor bool   `json:"explicitMajor,omitempty"`
	Raw           string `json:"raw,omitempty"`
}

// MarshalJSON encodes the structured and raw arms as objects and the special
// markers as short strings.
func (c Chord) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindNoChord:
		return json.Marshal("N.C.")
	case KindMuted:
		return json.Marshal("x")
	case KindRaw:
		return json.Marshal(chordJSON{Raw: c.Raw})
	}

	w := chordJSON{
		Root:          string(c.Root),
		Accidental:    c.Accidental.String(),
		Quality:       c.Quality.String(),
		Extension:     c.Extension,
		Add:           c.Add,
		ExplicitMajor: c.ExplicitMajor,
	}
	if c.Bass != 0 {
		w.Bass = string(c.Bass)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes both encodings produced by MarshalJSON. An unknown
// bare string decodes to the raw legacy arm rather than failing, so old
// documents keep loading.
func (c *Chord) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "N.C.", "N.C", "NC", "n.c.":
			*c = NoChord()
		case "x", "X":
			*c = Muted()
		default:
			*c = RawChord(s)
		}
		return nil
	}

	var w chordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding chord: %w", err)
	}

	if w.Raw != "" {
		*c = RawChord(w.Raw)
		return nil
	}

	if len(w.Root) != 1 || w.Root[0] < 'A' || w.Root[0] > 'G' {
		return fmt.Errorf("decoding chord: invalid root %q", w.Root)
	}

	out := Chord{
		Kind:          KindChord,
		Root:          w.Root[0],
		Extension:     w.Extension,
		Add:           w.Add,
		ExplicitMajor: w.ExplicitMajor,
	}

	switch w.Accidental {
	case "#":
		out.Accidental = Sharp
	case "b":
		out.Accidental = Flat
	case "":
		out.Accidental = AccidentalNone
	default:
		return fmt.Errorf("decoding chord: invalid accidental %q", w.Accidental)
	}

	switch w.Quality {
	case "", "major":
		out.Quality = Major
	case "minor":
		out.Quality = Minor
	case "diminished":
		out.Quality = Diminished
	case "augmented":
		out.Quality = Augmented
	case "sus2":
		out.Quality = Sus2
	case "sus4":
		out.Quality = Sus4
	default:
		return fmt.Errorf("decoding chord: invalid quality %q", w.Quality)
	}

	if w.Bass != "" {
		if len(w.Bass) != 1 || w.Bass[0] < 'A' || w.Bass[0] > 'G' {
			return fmt.Errorf("decoding chord: invalid bass %q", w.Bass)
		}
		out.Bass = w.Bass[0]
	}

	*c = out
	return nil
}
