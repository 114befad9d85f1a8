package model

// Word is a lyric token paired with the chord (if any) written above or
// adjacent to it. A nil Chord means no chord was assigned; that is the
// normal state for most words, not an error.
type Word struct {
	Text  string `json:"text"`
	Chord *Chord `json:"chord,omitempty"`
}

// Line is an ordered sequence of words. The order is logical (buffer)
// order; rendering direction is a presentation concern and is not stored
// here.
type Line struct {
	Words []Word `json:"words"`
}

// Text returns the lyric text of the line with single spaces between words.
func (l Line) Text() string {
	out := ""
	for i, w := range l.Words {
		if i > 0 {
			out += " "
		}
		out += w.Text
	}
	return out
}

// SectionType is the semantic kind of a song section.
type SectionType string

const (
	SectionVerse  SectionType = "verse"
	SectionChorus SectionType = "chorus"
	SectionBridge SectionType = "bridge"
	SectionIntro  SectionType = "intro"
	SectionOutro  SectionType = "outro"
)

// Section is a labeled, ordered group of lines. Sections appear in the
// order they were encountered in the source; that order is significant.
type Section struct {
	ID    string      `json:"id"`
	Type  SectionType `json:"type"`
	Label string      `json:"label"`
	Lines []Line      `json:"lines"`
}

// IsEmpty reports whether the section has no lines.
func (s Section) IsEmpty() bool {
	return len(s.Lines) == 0
}

// ChordSheet is a complete reconstructed song document. It is created once
// per successful pipeline run and is not mutated afterwards by this library;
// downstream editors work on their own copies.
type ChordSheet struct {
	Title    string    `json:"title"`
	Artist   string    `json:"artist,omitempty"`
	Language string    `json:"language,omitempty"` // BCP 47 tag, e.g. "en", "he"
	Key      string    `json:"key,omitempty"`
	Tempo    int       `json:"tempo,omitempty"`
	Capo     int       `json:"capo,omitempty"`
	Sections []Section `json:"sections"`
}

// NewChordSheet creates an empty sheet with the given metadata.
func NewChordSheet(title, artist string) *ChordSheet {
	return &ChordSheet{
		Title:    title,
		Artist:   artist,
		Sections: make([]Section, 0),
	}
}

// AddSection appends a section to the sheet.
func (cs *ChordSheet) AddSection(s Section) {
	cs.Sections = append(cs.Sections, s)
}

// SectionCount returns the number of sections.
func (cs *ChordSheet) SectionCount() int {
	return len(cs.Sections)
}

// Chords returns every assigned chord in document order. Raw legacy chords
// are included; nil assignments are skipped.
func (cs *ChordSheet) Chords() []Chord {
	var out []Chord
	for _, sec := range cs.Sections {
		for _, line := range sec.Lines {
			for _, w := range line.Words {
				if w.Chord != nil {
					out = append(out, *w.Chord)
				}
			}
		}
	}
	return out
}
