// Package geom provides the integer geometry used to address a dot-matrix
// display: points, rectangles, anchors and lines.
//
// Coordinates are unsigned and rectangles store extents, not maximum
// coordinates. All rectangle operations use one half-open convention: a
// rectangle covers every point p with Origin <= p < Origin+extent on both
// axes. Contains and Points agree on that set.
package geom

import (
	"fmt"
	"iter"
	"math"
)

// Point is a position on the display grid.
type Point struct {
	X, Y uint16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y uint16) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String returns a string representation of p like "(3,4)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func minPoint(a, b Point) Point {
	return Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

func maxPoint(a, b Point) Point {
	return Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}

// Anchor names a corner of a Rect.
type Anchor uint8

const (
	UpperLeft Anchor = iota
	UpperRight
	LowerRight
	LowerLeft
)

func (a Anchor) String() string {
	switch a {
	case UpperLeft:
		return "UpperLeft"
	case UpperRight:
		return "UpperRight"
	case LowerRight:
		return "LowerRight"
	case LowerLeft:
		return "LowerLeft"
	default:
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
}

// Rect is an axis-aligned rectangle given by its upper-left corner and its
// extents.
type Rect struct {
	Origin        Point
	Width, Height uint16
}

// R is shorthand for Rect{Origin: Pt(x, y), Width: w, Height: h}.
func R(x, y, w, h uint16) Rect {
	return Rect{Origin: Pt(x, y), Width: w, Height: h}
}

// Valid reports whether the far edges of r fit in the coordinate type.
func (r Rect) Valid() bool {
	return int(r.Origin.X)+int(r.Width) <= math.MaxUint16 &&
		int(r.Origin.Y)+int(r.Height) <= math.MaxUint16
}

// Empty reports whether r covers no point.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// AnchorPoint returns the corner of r named by a. Right and lower corners
// are the exclusive far edges, Origin+extent.
func (r Rect) AnchorPoint(a Anchor) Point {
	switch a {
	case UpperRight:
		return Point{X: r.Origin.X + r.Width, Y: r.Origin.Y}
	case LowerRight:
		return Point{X: r.Origin.X + r.Width, Y: r.Origin.Y + r.Height}
	case LowerLeft:
		return Point{X: r.Origin.X, Y: r.Origin.Y + r.Height}
	default:
		return r.Origin
	}
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && int(p.X) < int(r.Origin.X)+int(r.Width) &&
		p.Y >= r.Origin.Y && int(p.Y) < int(r.Origin.Y)+int(r.Height)
}

// Points returns every point of r in row-major order: all x for the first
// row, then the next row. The sequence can be ranged over any number of
// times and yields exactly Width*Height points.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := int(r.Origin.Y); y < int(r.Origin.Y)+int(r.Height); y++ {
			for x := int(r.Origin.X); x < int(r.Origin.X)+int(r.Width); x++ {
				if !yield(Point{X: uint16(x), Y: uint16(y)}) {
					return
				}
			}
		}
	}
}

// Translate returns r moved by (dx, dy). The caller keeps the result valid.
func (r Rect) Translate(dx, dy uint16) Rect {
	r.Origin = r.Origin.Add(Point{X: dx, Y: dy})
	return r
}

// Intersect returns the largest rectangle contained by both r and s. If
// they do not overlap the zero Rect is returned.
func (r Rect) Intersect(s Rect) Rect {
	o := maxPoint(r.Origin, s.Origin)
	w := min(int(r.Origin.X)+int(r.Width), int(s.Origin.X)+int(s.Width)) - int(o.X)
	h := min(int(r.Origin.Y)+int(r.Height), int(s.Origin.Y)+int(s.Height)) - int(o.Y)
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{Origin: o, Width: saturate(w), Height: saturate(h)}
}

// Union returns the smallest rectangle covering both a and b. The extent
// never shrinks below either input's far edges. Far edges are computed
// without wrapping; an extent that does not fit in uint16 saturates at
// math.MaxUint16.
func Union(a, b Rect) Rect {
	o := minPoint(a.Origin, b.Origin)
	// Far edges can reach 2*MaxUint16, so work in int.
	w := max(int(a.Origin.X)+int(a.Width), int(b.Origin.X)+int(b.Width)) - int(o.X)
	h := max(int(a.Origin.Y)+int(a.Height), int(b.Origin.Y)+int(b.Height)) - int(o.Y)
	return Rect{Origin: o, Width: saturate(w), Height: saturate(h)}
}

func saturate(v int) uint16 {
	return uint16(min(v, math.MaxUint16))
}

// ExtendTo returns r grown just enough to contain p. If r already contains
// p it is returned unchanged. A point at coordinate 65535 is contained by
// the result unless the result would need an extent of 65536, which
// saturates to 65535.
func (r Rect) ExtendTo(p Point) Rect {
	if r.Contains(p) {
		return r
	}
	return Union(r, Rect{Origin: p, Width: 1, Height: 1})
}

// String returns a string representation of r like "(3,4)+10x2".
func (r Rect) String() string {
	return fmt.Sprintf("%v+%dx%d", r.Origin, r.Width, r.Height)
}
