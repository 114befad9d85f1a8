// Package model provides the intermediate representation (IR) for
// reconstructed chord sheets.
//
// This package defines the user-facing data structures that the
// reconstruction pipeline produces. All parsing, clustering, and alignment
// operations ultimately emit these types, making them the primary API for
// consuming reconstructed content.
//
// # Document structure
//
// The [ChordSheet] type represents a complete song document:
//
//	sheet := model.NewChordSheet("Wonderwall", "Oasis")
//	sheet.AddSection(section)
//
// Each [Section] holds an ordered list of [Line] values, and each Line is an
// ordered list of [Word] values. A Word pairs a lyric token with the
// optional [Chord] written above or next to it.
//
// # Chords
//
// [Chord] is a tagged variant: it is either a structured chord (root,
// accidental, quality, extension, and so on), one of two special markers
// ("no chord" and "muted"), or a raw legacy string that predates structured
// parsing. Consumers switch on [Chord.Kind] so every arm is handled
// explicitly. Chords serialize to JSON as objects; the special markers
// serialize as short strings.
//
// # Geometry
//
// Geometric primitives support the OCR token path:
//
//   - [BBox] - bounding box with intersection and overlap calculations
//   - [Point] - 2D point with distance calculation
//   - [Token] - a recognized text fragment with its box and confidence
package model
