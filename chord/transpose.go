package chord

import "github.com/chordsight/chordsight/model"

// pitchClass maps a natural note letter to its semitone offset from C.
var pitchClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// spelling is the fixed preference table mapping a pitch class back to a
// note letter and accidental. It never produces double accidentals; the
// black keys use the conventional mixed spelling (C#, Eb, F#, G#, Bb).
var spelling = [12]struct {
	root       byte
	accidental model.Accidental
}{
	{'C', model.AccidentalNone},
	{'C', model.Sharp},
	{'D', model.AccidentalNone},
	{'E', model.Flat},
	{'E', model.AccidentalNone},
	{'F', model.AccidentalNone},
	{'F', model.Sharp},
	{'G', model.AccidentalNone},
	{'G', model.Sharp},
	{'A', model.AccidentalNone},
	{'B', model.Flat},
	{'B', model.AccidentalNone},
}

// Transpose shifts a chord by the given number of semitones, which may be
// negative. Special markers and raw legacy strings pass through unchanged.
// The bass note of a slash chord is transposed by the same interval; since
// the data model keeps only the bass letter, the preferred spelling's
// letter is used and its accidental is dropped, mirroring what parsing does.
func Transpose(c model.Chord, semitones int) model.Chord {
	if c.Kind != model.KindChord {
		return c
	}

	out := c

	pc := pitchClass[c.Root]
	switch c.Accidental {
	case model.Sharp:
		pc++
	case model.Flat:
		pc--
	}
	pc = normalize(pc + semitones)

	out.Root = spelling[pc].root
	out.Accidental = spelling[pc].accidental

	if c.Bass != 0 {
		bpc := normalize(pitchClass[c.Bass] + semitones)
		out.Bass = spelling[bpc].root
	}

	return out
}

// normalize wraps a semitone count into 0-11, handling negative values.
func normalize(pc int) int {
	pc %= 12
	if pc < 0 {
		pc += 12
	}
	return pc
}
