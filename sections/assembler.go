// Package sections groups classified and aligned lines into labeled song
// sections by detecting header-like lines.
package sections

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chordsight/chordsight/model"
)

// headerKeywords maps a header keyword (lowercased) to its section type.
// Localized spellings map onto the same five semantic types.
var headerKeywords = map[string]model.SectionType{
	"verse":  model.SectionVerse,
	"chorus": model.SectionChorus,
	"bridge": model.SectionBridge,
	"intro":  model.SectionIntro,
	"outro":  model.SectionOutro,

	// Common localized equivalents seen on tab sites.
	"refrain":    model.SectionChorus, // fr/de
	"strophe":    model.SectionVerse,  // de
	"couplet":    model.SectionVerse,  // fr
	"estribillo": model.SectionChorus, // es
	"verso":      model.SectionVerse,  // es/it
	"puente":     model.SectionBridge, // es
}

// headerPattern matches bracketed headers like "[Verse 2]" and
// colon-suffixed headers like "Chorus:". The keyword and any trailing
// qualifier are captured for the label.
var headerPattern = regexp.MustCompile(`^\s*(?:\[\s*([^\[\]]+?)\s*\]|([^:\[\]]+?)\s*:)\s*$`)

// ParseHeader reports whether the raw line is a section header, and if so
// which section type it opens and the human label to keep. "[Verse 2]"
// yields (SectionVerse, "Verse 2", true); a bracketed line whose keyword is
// unknown is not a header.
func ParseHeader(raw string) (model.SectionType, string, bool) {
	m := headerPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", "", false
	}

	label := m[1]
	if label == "" {
		label = m[2]
	}

	fields := strings.Fields(label)
	if len(fields) == 0 {
		return "", "", false
	}
	typ, ok := headerKeywords[strings.ToLower(fields[0])]
	if !ok {
		return "", "", false
	}
	return typ, label, true
}

// Assembler accumulates lines into ordered sections. Feed lines in source
// order and call Finish once; section order is significant and preserved.
type Assembler struct {
	sections []model.Section
	current  *model.Section
	counter  int
}

// New creates an empty assembler.
func New() *Assembler {
	return &Assembler{}
}

// FeedHeader closes the current section (if it has content) and opens a new
// one of the given type and label.
func (a *Assembler) FeedHeader(typ model.SectionType, label string) {
	a.closeCurrent()
	a.counter++
	a.current = &model.Section{
		ID:    fmt.Sprintf("%s-%d", typ, a.counter),
		Type:  typ,
		Label: label,
	}
}

// FeedLine appends a content line to the current section, implicitly
// opening a default verse section if none is open yet.
func (a *Assembler) FeedLine(line model.Line) {
	if a.current == nil {
		a.counter++
		a.current = &model.Section{
			ID:    fmt.Sprintf("%s-%d", model.SectionVerse, a.counter),
			Type:  model.SectionVerse,
			Label: "Verse",
		}
	}
	a.current.Lines = append(a.current.Lines, line)
}

// Finish closes the last open section and returns all sections in order.
// A trailing header with no content lines produces no section.
func (a *Assembler) Finish() []model.Section {
	a.closeCurrent()
	if a.sections == nil {
		return []model.Section{}
	}
	return a.sections
}

func (a *Assembler) closeCurrent() {
	if a.current != nil && !a.current.IsEmpty() {
		a.sections = append(a.sections, *a.current)
	}
	a.current = nil
}
