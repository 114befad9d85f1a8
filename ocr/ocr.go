//go:build ocr

// Package ocr is the boundary to the Tesseract OCR engine (via gosseract).
// It turns a scanned image into positioned tokens for the grid
// reconstructor. It requires Tesseract to be installed on the system. On
// macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/chordsight/chordsight/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeTokens performs OCR on image data and returns one token per
// recognized symbol with its bounding box and confidence (0-100). No
// confidence filtering happens here; the grid reconstructor owns that
// threshold.
func (c *Client) RecognizeTokens(imageData []byte) ([]model.Token, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	tokens := make([]model.Token, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		tokens = append(tokens, model.Token{
			Text: box.Word,
			BBox: model.NewBBox(
				float64(box.Box.Min.X),
				float64(box.Box.Min.Y),
				float64(box.Box.Dx()),
				float64(box.Box.Dy()),
			),
			Confidence: box.Confidence,
		})
	}
	return tokens, nil
}

// RecognizeText performs plain OCR and returns the recognized text. Useful
// for already-typeset sources where positions are not needed.
func (c *Client) RecognizeText(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string
// (e.g. "eng+heb"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode. Chord sheets usually do
// best with gosseract.PSM_SINGLE_BLOCK.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
