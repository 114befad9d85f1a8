package align

import (
	"math"
	"sort"
	"strings"

	"github.com/chordsight/chordsight/chord"
	"github.com/chordsight/chordsight/lang"
	"github.com/chordsight/chordsight/model"
)

// span is a token with its normalized [0,1] horizontal extent within its
// line.
type span struct {
	text       string
	start, end float64
}

func (s span) width() float64 {
	return s.end - s.start
}

func (s span) center() float64 {
	return (s.start + s.end) / 2
}

// mirror flips the span to visual coordinates for right-to-left text: the
// first rune of an RTL buffer is drawn at the right edge.
func (s span) mirror() span {
	return span{text: s.text, start: 1 - s.end, end: 1 - s.start}
}

// candidate is one scored (word, chord) pairing.
type candidate struct {
	word, chord int
	score       float64
}

// Align pairs the chords of chordLine with the words of lyricLine by
// proportional position and returns the lyric words with their chords
// attached. Words that no chord candidate clears the acceptance thresholds
// for keep a nil chord; that is expected, not an error.
func (c *Classifier) Align(chordLine, lyricLine string) []model.Word {
	chordLine = normalizeWhitespace(chordLine)
	lyricLine = normalizeWhitespace(lyricLine)

	// Both lines share one normalization scale. Dividing each line by its
	// own length would make equal character columns drift apart whenever
	// the lines differ in length, which is the common case.
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

	// Tokens are always extracted left-to-right from the buffer, but an
	// RTL lyric is drawn right-to-left. Flip both sides into visual
	// coordinates and reverse both ordered lists so matching and the
	// greedy tie-breaking below run in visual left-to-right order.
	rtl := lang.HasRTL(lyricLine)
	overlapMin := c.config.OverlapThresholdLTR
	centerFrac := c.config.CenterFractionLTR
	if rtl {
		overlapMin = c.config.OverlapThresholdRTL
		centerFrac = c.config.CenterFractionRTL

		for i := range wordSpans {
			wordSpans[i] = wordSpans[i].mirror()
		}
		for i := range chordSpans {
			chordSpans[i] = chordSpans[i].mirror()
		}
		reverseSpans(wordSpans)
		reverseWords(words)
		reverseSpans(chordSpans)
		reverseChords(chords)
	}

	// Score every acceptable (word, chord) pair.
	var cands []candidate
	for wi, ws := range wordSpans {
		for ci, cs := range chordSpans {
			overlap := overlapRatio(ws, cs)
			dist := math.Abs(ws.center() - cs.center())

			if overlap <= overlapMin && dist >= ws.width()*centerFrac {
				continue
			}

			cands = append(cands, candidate{
				word:  wi,
				chord: ci,
				score: overlap*c.config.OverlapWeight + 1/(1+dist*c.config.DistanceWeight),
			})
		}
	}

	// Greedy assignment: best score first, each chord to at most one word,
	// each word to at most one chord. Ties break on word then chord index
	// so identical input always produces identical output.
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		if cands[i].word != cands[j].word {
			return cands[i].word < cands[j].word
		}
		return cands[i].chord < cands[j].chord
	})

	wordTaken := make([]bool, len(words))
	chordTaken := make([]bool, len(chords))
	for _, cand := range cands {
		if wordTaken[cand.word] || chordTaken[cand.chord] {
			continue
		}
		wordTaken[cand.word] = true
		chordTaken[cand.chord] = true
		ch := chords[cand.chord]
		words[cand.word].Chord = &ch
	}

	if rtl {
		// Restore logical (buffer) order for the output line.
		reverseWords(words)
	}
	return words
}

// ChordOnlyLine turns a lone chord line (one with no lyric line under it)
// into words carrying chords over empty text, so the chords survive into
// the document.
func (c *Classifier) ChordOnlyLine(chordLine string) []model.Word {
	chordLine = normalizeWhitespace(chordLine)
	_, chords := extractChords(chordLine, float64(len([]rune(chordLine))))
	words := make([]model.Word, len(chords))
	for i := range chords {
		ch := chords[i]
		words[i] = model.Word{Chord: &ch}
	}
	return words
}

// LyricOnlyLine turns a lyric line with no chord line above it into plain
// words.
func (c *Classifier) LyricOnlyLine(lyricLine string) []model.Word {
	lyricLine = normalizeWhitespace(lyricLine)
	spans := extractSpans(lyricLine, float64(len([]rune(lyricLine))))
	words := make([]model.Word, len(spans))
	for i, s := range spans {
		words[i] = model.Word{Text: s.text}
	}
	return words
}

// extractChords extracts the tokens of a chord line that parse (leniently)
// as chords, with their normalized spans. Non-chord tokens on a chord line
// are noise and are skipped.
func extractChords(line string, scale float64) ([]span, []model.Chord) {
	var spans []span
	var chords []model.Chord
	for _, s := range extractSpans(line, scale) {
		if ch, ok := chord.ParseLenient(s.text); ok {
			spans = append(spans, s)
			chords = append(chords, ch)
		}
	}
	return spans, chords
}

// extractSpans splits a line into whitespace-separated tokens with rune
// offsets divided by scale, so two lines normalized with the same scale
// keep their columns comparable.
func extractSpans(line string, scale float64) []span {
	runes := []rune(line)
	if len(runes) == 0 || scale <= 0 {
		return nil
	}

	var spans []span
	start := -1
	for i, r := range runes {
		if r == ' ' {
			if start >= 0 {
				spans = append(spans, span{
					text:  string(runes[start:i]),
					start: float64(start) / scale,
					end:   float64(i) / scale,
				})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, span{
			text:  string(runes[start:]),
			start: float64(start) / scale,
			end:   float64(len(runes)) / scale,
		})
	}
	return spans
}

// normalizeWhitespace widens tabs to four spaces and strips the line
// ending, leaving internal runs of spaces intact: they encode position.
func normalizeWhitespace(line string) string {
	line = strings.TrimRight(line, "\r\n")
	return strings.ReplaceAll(line, "\t", "    ")
}

// overlapRatio is the overlap of two spans relative to the smaller one,
// between 0 and 1.
func overlapRatio(a, b span) float64 {
	left := math.Max(a.start, b.start)
	right := math.Min(a.end, b.end)
	if right <= left {
		return 0
	}
	minWidth := math.Min(a.width(), b.width())
	if minWidth == 0 {
		return 0
	}
	return (right - left) / minWidth
}

func reverseSpans(s []span) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseWords(w []model.Word) {
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
}

func reverseChords(c []model.Chord) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}
