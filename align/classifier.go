package align

import (
	"strings"

	"github.com/chordsight/chordsight/chord"
)

// Config holds tuning for classification and alignment.
type Config struct {
	// ChordThreshold is the fraction of a line's tokens that must parse as
	// chords for the line to classify as a chord line (default: 0.35).
	ChordThreshold float64

	// MaxNonChordTokens is the secondary rule: a line with at least one
	// chord token and no more than this many non-chord tokens is a chord
	// line regardless of the fraction (default: 3).
	MaxNonChordTokens int

	// OverlapThresholdLTR and OverlapThresholdRTL are the minimum
	// normalized overlap ratios for accepting a chord/word pair. The RTL
	// threshold is stricter because mirrored offsets are noisier
	// (defaults: 0.3 and 0.5).
	OverlapThresholdLTR float64
	OverlapThresholdRTL float64

	// CenterFractionLTR and CenterFractionRTL accept a pair whose centers
	// are closer than this fraction of the word's width, even without
	// enough overlap (defaults: 0.5 and 0.25).
	CenterFractionLTR float64
	CenterFractionRTL float64

	// OverlapWeight and DistanceWeight combine overlap and center distance
	// into a candidate score (defaults: 1.0 and 10.0).
	OverlapWeight  float64
	DistanceWeight float64

	// IndexWindow is how far, in words, the index-based aligner searches
	// around a chord's expected word (default: 2).
	IndexWindow int
}

// DefaultConfig returns the default classifier and aligner configuration.
func DefaultConfig() Config {
	return Config{
		ChordThreshold:      0.35,
		MaxNonChordTokens:   3,
		OverlapThresholdLTR: 0.3,
		OverlapThresholdRTL: 0.5,
		CenterFractionLTR:   0.5,
		CenterFractionRTL:   0.25,
		OverlapWeight:       1.0,
		DistanceWeight:      10.0,
		IndexWindow:         2,
	}
}

// Classifier decides line kinds and aligns chord lines with lyric lines.
type Classifier struct {
	config Config
}

// New creates a classifier with default configuration.
func New() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// NewWithConfig creates a classifier with custom configuration.
func NewWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// IsChordLine reports whether the line consists mostly of chord symbols.
// Tokens are matched leniently so OCR-damaged chords still count.
func (c *Classifier) IsChordLine(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}

	matches := 0
	for _, tok := range tokens {
		if chord.IsChordLenient(tok) {
			matches++
		}
	}

	if float64(matches)/float64(len(tokens)) > c.config.ChordThreshold {
		return true
	}
	return matches > 0 && len(tokens)-matches <= c.config.MaxNonChordTokens
}
