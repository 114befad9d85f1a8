package model

import "fmt"

// Token is a single recognized character or symbol from an OCR pass, with
// its bounding box and recognition confidence (0-100).
type Token struct {
	Text       string  `json:"text"`
	BBox       BBox    `json:"bbox"`
	Confidence float64 `json:"confidence"`
}

// Validate reports a hard error when the token's shape is wrong (missing
// text or a non-positive box). Content-level noise is not an error; shape
// problems are, per the pipeline's propagation policy.
func (t Token) Validate() error {
	if t.Text == "" {
		return fmt.Errorf("token at (%g, %g) has empty text", t.BBox.X, t.BBox.Y)
	}
	if !t.BBox.IsValid() {
		return fmt.Errorf("token %q has non-positive bounding box %gx%g", t.Text, t.BBox.Width, t.BBox.Height)
	}
	return nil
}

// TokenBlock is an independently laid-out spatial region of tokens, such as
// one column of a two-column scan. Blocks are reconstructed separately so
// columns do not bleed into each other.
type TokenBlock struct {
	Tokens []Token `json:"tokens"`
}
