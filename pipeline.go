package chordsight

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/chordsight/chordsight/align"
	"github.com/chordsight/chordsight/chord"
	"github.com/chordsight/chordsight/lang"
	"github.com/chordsight/chordsight/model"
	"github.com/chordsight/chordsight/sections"
	"github.com/chordsight/chordsight/songtext"
)

// buildSheet runs classification, alignment, and section assembly over
// newline-delimited text. positional selects the column-offset aligner
// (grid-reconstructed text) over the index aligner (pasted plain text).
func buildSheet(text string, positional bool, opts ImportOptions) (*model.ChordSheet, []Warning) {
	sheet := model.NewChordSheet(opts.title, opts.artist)
	var warnings []Warning

	lines := songtext.Lines(text)
	classifier := align.NewWithConfig(opts.alignConfig)
	asm := sections.New()

	var lyricText strings.Builder

	i := 0
	for i < len(lines) {
		raw := lines[i]
		if strings.TrimSpace(raw) == "" {
			i++
			continue
		}

		if typ, label, ok := sections.ParseHeader(raw); ok {
			asm.FeedHeader(typ, label)
			i++
			continue
		}

		if !classifier.IsChordLine(raw) {
			lyricText.WriteString(raw)
			lyricText.WriteString("\n")
			asm.FeedLine(model.Line{Words: classifier.LyricOnlyLine(raw)})
			i++
			continue
		}

		// A chord line pairs with the lyric line directly beneath it.
		// No pairable line (end of input, blank line, header, or another
		// chord line) leaves the chords on a line of their own.
		next, hasNext := "", false
		if i+1 < len(lines) {
			candidate := lines[i+1]
			if strings.TrimSpace(candidate) != "" {
				if _, _, isHeader := sections.ParseHeader(candidate); !isHeader && !classifier.IsChordLine(candidate) {
					next, hasNext = candidate, true
				}
			}
		}

		if !hasNext {
			asm.FeedLine(model.Line{Words: classifier.ChordOnlyLine(raw)})
			i++
			continue
		}

		var words []model.Word
		if positional {
			words = classifier.Align(raw, next)
		} else {
			words = classifier.AlignByIndex(raw, next)
		}

		if unassigned := countChordTokens(raw) - countAssigned(words); unassigned > 0 {
			warnings = append(warnings, Warning{
				Stage:   "align",
				Message: fmt.Sprintf("%d chord(s) on %q found no word to attach to", unassigned, strings.TrimSpace(raw)),
			})
		}

		lyricText.WriteString(next)
		lyricText.WriteString("\n")
		asm.FeedLine(model.Line{Words: words})
		i += 2
	}

	for _, section := range asm.Finish() {
		sheet.AddSection(section)
	}

	if tag := lang.GuessLanguage(lyricText.String()); tag != language.Und {
		sheet.Language = tag.String()
	}

	return sheet, warnings
}

// countChordTokens counts the tokens of a chord line that parse as chords.
func countChordTokens(line string) int {
	n := 0
	for _, tok := range strings.Fields(line) {
		if chord.IsChordLenient(tok) {
			n++
		}
	}
	return n
}

// countAssigned counts words that received a chord.
func countAssigned(words []model.Word) int {
	n := 0
	for _, w := range words {
		if w.Chord != nil {
			n++
		}
	}
	return n
}
