// Package grid rebuilds whitespace-faithful text from spatially positioned
// OCR tokens. The OCR engine returns characters with bounding boxes, not
// pre-aligned columns; this package is the only place where the vertical
// chord/lyric alignment encoded in the original layout survives into plain
// text.
package grid

import (
	"math"
	"sort"
	"strings"

	"github.com/chordsight/chordsight/model"
)

// Config holds tuning for grid reconstruction.
type Config struct {
	// LineTolerance is the fraction of the running average line height a
	// token's vertical center may deviate from the current line's center
	// and still join it (default: 0.6).
	LineTolerance float64

	// GapThreshold is the fraction of the median token width a horizontal
	// gap must exceed before any spaces are inserted (default: 0.6).
	GapThreshold float64

	// CharWidthFactor scales the median token width down to a proxy
	// character width when converting a gap to a space count
	// (default: 0.8).
	CharWidthFactor float64

	// MinConfidence is the recognition confidence a token must exceed to
	// take part in clustering (default: 30).
	MinConfidence float64
}

// DefaultConfig returns the default reconstruction configuration.
func DefaultConfig() Config {
	return Config{
		LineTolerance:   0.6,
		GapThreshold:    0.6,
		CharWidthFactor: 0.8,
		MinConfidence:   30,
	}
}

// Reconstructor converts positioned tokens into text lines.
type Reconstructor struct {
	config Config
}

// New creates a reconstructor with default configuration.
func New() *Reconstructor {
	return &Reconstructor{config: DefaultConfig()}
}

// NewWithConfig creates a reconstructor with custom configuration.
func NewWithConfig(config Config) *Reconstructor {
	return &Reconstructor{config: config}
}

// ReconstructBlocks reconstructs each block independently and joins the
// results with a blank line, so independent regions (for example the two
// columns of a folded song book scan) never bleed into each other.
func (r *Reconstructor) ReconstructBlocks(blocks []model.TokenBlock) string {
	texts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if t := r.Reconstruct(block.Tokens); t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, "\n\n")
}

// Reconstruct converts one block of tokens into newline-joined,
// whitespace-reconstructed text lines. Low-confidence tokens are dropped
// first; an empty or fully filtered input produces the empty string.
func (r *Reconstructor) Reconstruct(tokens []model.Token) string {
	kept := make([]model.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Confidence > r.config.MinConfidence {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	lines := r.groupIntoLines(kept)

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, r.renderLine(line))
	}
	return strings.Join(rendered, "\n")
}

// lineGroup accumulates the tokens of one text line together with the
// running means used by the greedy grouping.
type lineGroup struct {
	tokens    []model.Token
	centerY   float64 // running mean of vertical centers
	avgHeight float64 // running mean of token heights
}

func (g *lineGroup) add(t model.Token) {
	g.tokens = append(g.tokens, t)
	n := float64(len(g.tokens))
	g.centerY += (t.BBox.Center().Y - g.centerY) / n
	g.avgHeight += (t.BBox.Height - g.avgHeight) / n
}

// groupIntoLines sorts tokens by vertical center and greedily groups them:
// a token joins the current line while its center stays within
// LineTolerance times the running average line height of the line's
// center. This is a heuristic, not an optimal clustering; its simplicity
// is what keeps the output deterministic and reproducible.
func (r *Reconstructor) groupIntoLines(tokens []model.Token) []lineGroup {
	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Center().Y < sorted[j].BBox.Center().Y
	})

	var lines []lineGroup
	current := lineGroup{}

	for _, tok := range sorted {
		if len(current.tokens) == 0 {
			current.add(tok)
			continue
		}

		tolerance := current.avgHeight * r.config.LineTolerance
		if math.Abs(tok.BBox.Center().Y-current.centerY) <= tolerance {
			current.add(tok)
		} else {
			lines = append(lines, current)
			current = lineGroup{}
			current.add(tok)
		}
	}
	if len(current.tokens) > 0 {
		lines = append(lines, current)
	}

	return lines
}

// renderLine sorts one line's tokens by horizontal position and reinserts
// whitespace. The median token width stands in for the character width of
// the original monospaced layout.
func (r *Reconstructor) renderLine(line lineGroup) string {
	tokens := line.tokens
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].BBox.X < tokens[j].BBox.X
	})

	median := medianWidth(tokens)

	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			prev := tokens[i-1]
			gap := tok.BBox.Left() - prev.BBox.Right()
			if gap > median*r.config.GapThreshold {
				spaces := int(math.Floor(gap / (median * r.config.CharWidthFactor)))
				if spaces < 1 {
					spaces = 1
				}
				sb.WriteString(strings.Repeat(" ", spaces))
			}
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// medianWidth returns the median bounding-box width of the tokens.
func medianWidth(tokens []model.Token) float64 {
	if len(tokens) == 0 {
		return 0
	}
	widths := make([]float64, len(tokens))
	for i, t := range tokens {
		widths[i] = t.BBox.Width
	}
	sort.Float64s(widths)

	mid := len(widths) / 2
	if len(widths)%2 == 0 {
		return (widths[mid-1] + widths[mid]) / 2
	}
	return widths[mid]
}
