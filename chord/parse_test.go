package chord

import (
	"testing"

	"github.com/chordsight/chordsight/model"
)

func TestParse_RoundTrip(t *testing.T) {
	// Parsing a canonical spelling and serializing it again must
	// reproduce the input exactly.
	canonical := []string{
		"C",
		"Am",
		"Am7",
		"G#dim",
		"Ebaug",
		"C/E",
		"Fmaj7",
		"Cmaj9",
		"Cmmaj7",
		"Dsus2",
		"Asus4",
		"C5",
		"E7",
		"Bm11",
		"Cadd9",
		"Gadd2",
		"C7add9",
		"F#m7/B",
		"Bb",
		"Bbm",
		"N.C.",
		"x",
	}

	for _, s := range canonical {
		c, ok := Parse(s)
		if !ok {
			t.Errorf("Parse(%q): expected a chord, got absent", s)
			continue
		}
		if got := c.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParse_NonCanonicalSpellings(t *testing.T) {
	// Accepted variants normalize to a single canonical form.
	tests := []struct {
		in   string
		want string
	}{
		{"Csus", "Csus4"}, // bare sus defaults to sus4
		{"NC", "N.C."},
		{"N.C", "N.C."},
		{"n.c.", "N.C."},
		{"X", "x"},
		{"C/Eb", "C/E"}, // bass accidental is dropped
		{"  Am  ", "Am"},
	}

	for _, tt := range tests {
		c, ok := Parse(tt.in)
		if !ok {
			t.Errorf("Parse(%q): expected a chord, got absent", tt.in)
			continue
		}
		if got := c.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_Rejection(t *testing.T) {
	// Invalid input yields absent, never a best-guess chord.
	invalid := []string{
		"",
		"H",          // not one of the seven letters
		"C8",         // extension outside {5,6,7,9,11,13}
		"Cadd12",     // add outside {2,4,6,9}
		"Cadd",       // add without digits
		"C/",         // empty bass
		"C/H",        // invalid bass letter
		"hello",      //
		"Cmx",        // trailing garbage
		"C#b",        // double accidental
		"7",          // no root
		"maj7",       // no root
		"C maj7",     // interior space
		"Bandim",     // word that happens to contain chord letters
		"The",        //
	}

	for _, s := range invalid {
		if c, ok := Parse(s); ok {
			t.Errorf("Parse(%q) = %v, want absent", s, c)
		}
	}
}

func TestParse_Structure(t *testing.T) {
	tests := []struct {
		in   string
		want model.Chord
	}{
		{"C", model.Chord{Kind: model.KindChord, Root: 'C'}},
		{"F#m7", model.Chord{Kind: model.KindChord, Root: 'F', Accidental: model.Sharp, Quality: model.Minor, Extension: 7}},
		{"C7", model.Chord{Kind: model.KindChord, Root: 'C', Extension: 7}},
		{"Cmaj7", model.Chord{Kind: model.KindChord, Root: 'C', ExplicitMajor: true, Extension: 7}},
		{"Cmmaj7", model.Chord{Kind: model.KindChord, Root: 'C', Quality: model.Minor, ExplicitMajor: true, Extension: 7}},
		{"Abdim", model.Chord{Kind: model.KindChord, Root: 'A', Accidental: model.Flat, Quality: model.Diminished}},
		{"G/B", model.Chord{Kind: model.KindChord, Root: 'G', Bass: 'B'}},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if !ok {
			t.Errorf("Parse(%q): expected a chord, got absent", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParse_ExplicitMajorDistinguishesDominant(t *testing.T) {
	dom, ok := Parse("C7")
	if !ok {
		t.Fatal("Parse(C7): expected a chord")
	}
	maj, ok := Parse("Cmaj7")
	if !ok {
		t.Fatal("Parse(Cmaj7): expected a chord")
	}
	if dom == maj {
		t.Error("C7 and Cmaj7 must parse to different values")
	}
	if dom.ExplicitMajor {
		t.Error("C7 must not set ExplicitMajor")
	}
	if !maj.ExplicitMajor {
		t.Error("Cmaj7 must set ExplicitMajor")
	}
}

func TestParseLenient_Repairs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"G#di", "G#dim"},  // truncated dim
		{"Cminor", "Cm"},   // spelled-out minor
		{"Cminor7", "Cm7"}, //
		{"F♯m", "F#m"},     // Unicode sharp
		{"B♭", "Bb"},       // Unicode flat
		{"Am7", "Am7"},     // already canonical passes through
	}

	for _, tt := range tests {
		c, ok := ParseLenient(tt.in)
		if !ok {
			t.Errorf("ParseLenient(%q): expected a chord, got absent", tt.in)
			continue
		}
		if got := c.String(); got != tt.want {
			t.Errorf("ParseLenient(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLenient_SameValueAsStrict(t *testing.T) {
	// The lenient repair of "G#di" must produce the same structured value
	// as a strict parse of "G#dim".
	repaired, ok := ParseLenient("G#di")
	if !ok {
		t.Fatal("ParseLenient(G#di): expected a chord")
	}
	strict, ok := Parse("G#dim")
	if !ok {
		t.Fatal("Parse(G#dim): expected a chord")
	}
	if repaired != strict {
		t.Errorf("ParseLenient(G#di) = %+v, Parse(G#dim) = %+v; want equal", repaired, strict)
	}
}

func TestParseLenient_StillRejects(t *testing.T) {
	for _, s := range []string{"hello", "H7", "quick"} {
		if c, ok := ParseLenient(s); ok {
			t.Errorf("ParseLenient(%q) = %v, want absent", s, c)
		}
	}
}

func TestIsChord(t *testing.T) {
	if !IsChord("Am7") {
		t.Error("IsChord(Am7) = false, want true")
	}
	if IsChord("banana") {
		t.Error("IsChord(banana) = true, want false")
	}
}
