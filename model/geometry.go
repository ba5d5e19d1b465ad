package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BBox represents a rectangle in layout coordinates: X grows to the right,
// Y grows downward from the top of the layout area.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromEdges creates a bounding box from its left, top, right and
// bottom edges. Edges given in the wrong order are swapped.
func NewBBoxFromEdges(left, top, right, bottom float64) BBox {
	return BBox{
		X:      math.Min(left, right),
		Y:      math.Min(top, bottom),
		Width:  math.Abs(right - left),
		Height: math.Abs(bottom - top),
	}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 { return b.X }

// Right returns the right edge X coordinate
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 { return b.Y }

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func (b BBox) Overlaps(other BBox) bool {
	return b.Left() < other.Right() && other.Left() < b.Right() &&
		b.Top() < other.Bottom() && other.Top() < b.Bottom()
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return NewBBoxFromEdges(
		math.Min(b.Left(), other.Left()),
		math.Min(b.Top(), other.Top()),
		math.Max(b.Right(), other.Right()),
		math.Max(b.Bottom(), other.Bottom()),
	)
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
