package chordsight

import (
	"github.com/chordsight/chordsight/align"
	"github.com/chordsight/chordsight/grid"
)

// ImportOptions holds configuration for one reconstruction run.
type ImportOptions struct {
	// Document metadata
	title  string
	artist string

	// Stage configuration
	gridConfig  grid.Config
	alignConfig align.Config

	// OCR (image path only)
	ocrLanguage string
}

// defaultOptions returns the default import options.
func defaultOptions() ImportOptions {
	return ImportOptions{
		gridConfig:  grid.DefaultConfig(),
		alignConfig: align.DefaultConfig(),
	}
}

// clone creates a copy of ImportOptions. The configs are value types, so a
// plain copy is deep enough.
func (o ImportOptions) clone() ImportOptions {
	return o
}
