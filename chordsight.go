// Package chordsight reconstructs structured chord-sheet documents from
// unstructured input: raw chord/lyric text, positioned OCR tokens, or a
// scanned image.
//
// Basic usage:
//
//	sheet, warnings, err := chordsight.FromText(raw).Title("Wonderwall").Sheet()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", chordsight.FormatWarnings(warnings))
//	}
//
// From OCR tokens:
//
//	sheet, _, err := chordsight.FromTokens(tokens).Sheet()
//
// From a scanned image (requires building with -tags ocr and a local
// Tesseract install):
//
//	sheet, _, err := chordsight.FromImage(pngData).Sheet()
//
// The pipeline is pure data transformation: a run either completes or its
// result is discarded. Content-level noise (unparseable chords, ambiguous
// spacing) never fails a run; it shows up as absent chords and warnings.
package chordsight

import (
	"strings"

	"github.com/chordsight/chordsight/grid"
	"github.com/chordsight/chordsight/model"
	"github.com/chordsight/chordsight/ocr"
)

// Warning describes a non-fatal issue found during reconstruction.
type Warning struct {
	// Stage is the pipeline stage that raised the warning ("grid",
	// "align", "ocr").
	Stage string

	// Message is a human-readable description.
	Message string
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(w.Stage)
		sb.WriteString(": ")
		sb.WriteString(w.Message)
	}
	return sb.String()
}

// Importer provides a fluent interface for configuring and running one
// reconstruction. Each configuration method returns a new Importer
// instance, making chains safe to share and reuse.
type Importer struct {
	// Exactly one source is set.
	text      string
	hasText   bool
	blocks    []model.TokenBlock
	hasTokens bool
	imageData []byte
	hasImage  bool

	options ImportOptions

	// Accumulated error (fail-fast).
	err error
}

// FromText starts an import from newline-delimited chord/lyric text.
// Bracket markup ([ch], [tab]) is stripped before classification.
func FromText(text string) *Importer {
	return &Importer{text: text, hasText: true, options: defaultOptions()}
}

// FromTokens starts an import from one block of positioned OCR tokens.
func FromTokens(tokens []model.Token) *Importer {
	return FromTokenBlocks([]model.TokenBlock{{Tokens: tokens}})
}

// FromTokenBlocks starts an import from pre-partitioned token blocks, one
// per independent spatial region (multi-column layouts). Each block is
// reconstructed separately.
func FromTokenBlocks(blocks []model.TokenBlock) *Importer {
	return &Importer{blocks: blocks, hasTokens: true, options: defaultOptions()}
}

// FromImage starts an import from scanned image data (PNG, JPEG, GIF,
// TIFF, or BMP). Recognition requires building with -tags ocr; without it,
// Sheet returns ocr.ErrOCRNotEnabled.
func FromImage(data []byte) *Importer {
	return &Importer{imageData: data, hasImage: true, options: defaultOptions()}
}

// clone creates a copy of the Importer with a deep copy of options, so
// each chain method returns an independent instance.
func (im *Importer) clone() *Importer {
	return &Importer{
		text:      im.text,
		hasText:   im.hasText,
		blocks:    im.blocks,
		hasTokens: im.hasTokens,
		imageData: im.imageData,
		hasImage:  im.hasImage,
		options:   im.options.clone(),
		err:       im.err,
	}
}

// Title sets the document title.
func (im *Importer) Title(title string) *Importer {
	out := im.clone()
	out.options.title = title
	return out
}

// Artist sets the document artist.
func (im *Importer) Artist(artist string) *Importer {
	out := im.clone()
	out.options.artist = artist
	return out
}

// ChordThreshold overrides the fraction of tokens that must parse as
// chords for a line to classify as a chord line.
func (im *Importer) ChordThreshold(threshold float64) *Importer {
	out := im.clone()
	out.options.alignConfig.ChordThreshold = threshold
	return out
}

// MinConfidence overrides the OCR confidence below which tokens are
// discarded before reconstruction.
func (im *Importer) MinConfidence(confidence float64) *Importer {
	out := im.clone()
	out.options.gridConfig.MinConfidence = confidence
	return out
}

// GridConfig replaces the grid reconstruction configuration.
func (im *Importer) GridConfig(config grid.Config) *Importer {
	out := im.clone()
	out.options.gridConfig = config
	return out
}

// OCRLanguage sets the Tesseract language string for the image path
// (e.g. "eng" or "eng+heb").
func (im *Importer) OCRLanguage(language string) *Importer {
	out := im.clone()
	out.options.ocrLanguage = language
	return out
}

// Sheet runs the pipeline and returns the reconstructed document together
// with any non-fatal warnings. Empty or whitespace-only input yields a
// sheet with zero sections and a nil error.
func (im *Importer) Sheet() (*model.ChordSheet, []Warning, error) {
	if im.err != nil {
		return nil, nil, im.err
	}

	switch {
	case im.hasImage:
		return im.sheetFromImage()
	case im.hasTokens:
		return im.sheetFromTokens()
	default:
		return im.sheetFromText()
	}
}

// sheetFromImage recognizes the image into tokens, then continues on the
// token path.
func (im *Importer) sheetFromImage() (*model.ChordSheet, []Warning, error) {
	data, err := ocr.NormalizeImage(im.imageData)
	if err != nil {
		return nil, nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, nil, err
	}
	defer client.Close()

	if im.options.ocrLanguage != "" {
		if err := client.SetLanguage(im.options.ocrLanguage); err != nil {
			return nil, nil, err
		}
	}

	tokens, err := client.RecognizeTokens(data)
	if err != nil {
		return nil, nil, err
	}

	next := im.clone()
	next.hasImage = false
	next.blocks = []model.TokenBlock{{Tokens: tokens}}
	next.hasTokens = true
	return next.sheetFromTokens()
}

// sheetFromTokens validates token shape, reconstructs the text grid, and
// continues on the positional text path.
func (im *Importer) sheetFromTokens() (*model.ChordSheet, []Warning, error) {
	var warnings []Warning

	for _, block := range im.blocks {
		for _, tok := range block.Tokens {
			if err := tok.Validate(); err != nil {
				return nil, nil, err
			}
		}
	}

	r := grid.NewWithConfig(im.options.gridConfig)
	text := r.ReconstructBlocks(im.blocks)
	if text == "" && len(im.blocks) > 0 {
		warnings = append(warnings, Warning{
			Stage:   "grid",
			Message: "no tokens above the confidence threshold; result is empty",
		})
	}

	sheet, alignWarnings := buildSheet(text, true, im.options)
	return sheet, append(warnings, alignWarnings...), nil
}

// sheetFromText strips markup and runs the plain-text path, where chord
// positions are matched by token index rather than by column.
func (im *Importer) sheetFromText() (*model.ChordSheet, []Warning, error) {
	sheet, warnings := buildSheet(im.text, false, im.options)
	return sheet, warnings, nil
}
