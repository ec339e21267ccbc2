package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Drawing primitives handed back to the host UI layer. The core emits
// geometry only; rasterization belongs to the embedding application.

// Rect is an axis-aligned viewport rectangle in screen coordinates
// (Y grows downward).
type Rect struct {
	Min r2.Vec `json:"min"`
	Max r2.Vec `json:"max"`
}

// NewRect builds a rect from origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: r2.Vec{X: x, Y: y}, Max: r2.Vec{X: x + w, Y: y + h}}
}

// RectBetween builds the bounding rect of two arbitrary points.
func RectBetween(a, b r2.Vec) Rect {
	return Rect{
		Min: r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Bottom() float64 { return r.Max.Y }

// Center returns the midpoint of the rect.
func (r Rect) Center() r2.Vec {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Contains reports whether p lies inside the rect, edges included.
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether the two rects overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// RGBA is an 8-bit straight-alpha color.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Opaque builds a fully opaque color.
func Opaque(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// LineSegment is one stroked line.
type LineSegment struct {
	From  r2.Vec  `json:"from"`
	To    r2.Vec  `json:"to"`
	Width float64 `json:"width"`
	Color RGBA    `json:"color"`
}

// Polyline is a connected strip of points sharing one stroke.
type Polyline struct {
	Points []r2.Vec `json:"points"`
	Width  float64  `json:"width"`
	Color  RGBA     `json:"color"`
}

// Dot is a filled circle (particles, glow).
type Dot struct {
	Center r2.Vec  `json:"center"`
	Radius float64 `json:"radius"`
	Color  RGBA    `json:"color"`
}

// Bar is a filled rectangle (spectrum meters).
type Bar struct {
	Rect  Rect `json:"rect"`
	Color RGBA `json:"color"`
}

// clampByte maps a float onto 0-255, saturating at both ends.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
