package geom

import "iter"

// Line is a segment between two points, both inclusive.
type Line struct {
	From, To Point
}

// Points returns the points of l using Bresenham's algorithm. Both endpoints
// are visited and the walk goes from From to To. A line yields
// max(|dx|, |dy|)+1 points.
func (l Line) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		x0, y0 := int(l.From.X), int(l.From.Y)
		x1, y1 := int(l.To.X), int(l.To.Y)

		dx := abs(x1 - x0)
		dy := -abs(y1 - y0)
		sx, sy := 1, 1
		if x0 > x1 {
			sx = -1
		}
		if y0 > y1 {
			sy = -1
		}
		e := dx + dy

		for {
			if !yield(Point{X: uint16(x0), Y: uint16(y0)}) {
				return
			}
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x0 += sx
			}
			if e2 <= dx {
				e += dx
				y0 += sy
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
