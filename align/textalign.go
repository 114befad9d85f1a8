package align

import "github.com/chordsight/chordsight/model"

// AlignByIndex pairs chords with words by position in sequence: the first
// detected chord goes to the first word, and so on. It is the path for
// plain-text sources where character columns are unreliable (pasted text,
// inconsistent tab widths). A small search window around each chord's
// expected word tolerates minor drift between the two lines; within the
// window the word suggested by the chord's character offset wins.
func (c *Classifier) AlignByIndex(chordLine, lyricLine string) []model.Word {
	chordLine = normalizeWhitespace(chordLine)
	lyricLine = normalizeWhitespace(lyricLine)

	scale := float64(len([]rune(chordLine)))
	if l := float64(len([]rune(lyricLine))); l > scale {
		scale = l
	}

	chordSpans, chords := extractChords(chordLine, scale)
	wordSpans := extractSpans(lyricLine, scale)

	words := make([]model.Word, len(wordSpans))
	for i, ws := range wordSpans {
		words[i] = model.Word{Text: ws.text}
	}
	if len(chords) == 0 || len(words) == 0 {
		return words
	}

	taken := make([]bool, len(words))
	for ci := range chords {
		target := c.windowTarget(ci, chordSpans[ci], wordSpans)

		// Probe the window outward from the target: target, +1, -1, ...
		assigned := -1
		for delta := 0; delta <= c.config.IndexWindow; delta++ {
			if i := target + delta; i >= 0 && i < len(words) && !taken[i] {
				assigned = i
				break
			}
			if delta == 0 {
				continue
			}
			if i := target - delta; i >= 0 && i < len(words) && !taken[i] {
				assigned = i
				break
			}
		}
		if assigned < 0 {
			continue
		}

		taken[assigned] = true
		ch := chords[ci]
		words[assigned].Chord = &ch
	}

	return words
}

// windowTarget picks the expected word index for the ci-th chord. The
// chord's sequence index is the baseline; if the word whose span is nearest
// the chord's start offset lies within the window of that baseline, it is
// preferred, absorbing small character-count drift between the lines.
func (c *Classifier) windowTarget(ci int, cs span, wordSpans []span) int {
	target := ci
	if target >= len(wordSpans) {
		target = len(wordSpans) - 1
	}

	nearest, nearestDist := target, -1.0
	for wi, ws := range wordSpans {
		d := ws.center() - cs.center()
		if d < 0 {
			d = -d
		}
		if nearestDist < 0 || d < nearestDist {
			nearest, nearestDist = wi, d
		}
	}

	diff := nearest - target
	if diff < 0 {
		diff = -diff
	}
	if diff <= c.config.IndexWindow {
		return nearest
	}
	return target
}
