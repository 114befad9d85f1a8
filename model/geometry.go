package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box (rectangle). Coordinates follow the usual
// image convention: X grows rightward, Y grows downward, with (X, Y) at the
// top-left corner.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Top(), other.Top())
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// OverlapRatio calculates the overlap ratio with another box.
// Returns a value between 0 and 1, relative to the smaller box.
func (b BBox) OverlapRatio(other BBox) float64 {
	if !b.Intersects(other) {
		return 0
	}

	intersection := b.Intersection(other)
	minArea := math.Min(b.Area(), other.Area())

	if minArea == 0 {
		return 0
	}

	return intersection.Area() / minArea
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}
