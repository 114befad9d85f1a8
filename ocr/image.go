package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
)

// NormalizeImage decodes scan data in any supported format (PNG, JPEG,
// GIF, TIFF, BMP) and re-encodes it as PNG for Tesseract. Flatbed scanners
// commonly emit TIFF, which Tesseract builds do not always accept
// directly; routing everything through PNG sidesteps that.
func NormalizeImage(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if format == "png" {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}
