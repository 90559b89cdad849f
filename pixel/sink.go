package pixel

import (
	"periph.io/x/devices/v3/ltdc/geom"
)

// Sink receives pixel writes. Draw is called once per touched pixel, in
// drawing order. The sink owns clipping to its physical bounds and the
// conversion of Color to its storage format.
type Sink interface {
	Draw(p geom.Point, c Color)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(p geom.Point, c Color)

// Draw calls f(p, c).
func (f SinkFunc) Draw(p geom.Point, c Color) {
	f(p, c)
}

// Bounds is a Sink that ignores colors and grows Rect to cover every drawn
// point. It is used to measure what a drawing operation would touch.
type Bounds struct {
	Rect geom.Rect
}

// NewBounds returns a Bounds seeded with an empty rectangle at origin.
func NewBounds(origin geom.Point) *Bounds {
	return &Bounds{Rect: geom.Rect{Origin: origin}}
}

// Draw implements Sink.
func (b *Bounds) Draw(p geom.Point, _ Color) {
	b.Rect = b.Rect.ExtendTo(p)
}

// Op is a single recorded pixel write.
type Op struct {
	P geom.Point
	C Color
}

// Recorder is a Sink that keeps every write in order.
type Recorder struct {
	Ops []Op
}

// Draw implements Sink.
func (r *Recorder) Draw(p geom.Point, c Color) {
	r.Ops = append(r.Ops, Op{P: p, C: c})
}

// Points returns the recorded points in write order.
func (r *Recorder) Points() []geom.Point {
	pts := make([]geom.Point, len(r.Ops))
	for i, op := range r.Ops {
		pts[i] = op.P
	}
	return pts
}

// Last returns the color last written at each point.
func (r *Recorder) Last() map[geom.Point]Color {
	m := make(map[geom.Point]Color, len(r.Ops))
	for _, op := range r.Ops {
		m[op.P] = op.C
	}
	return m
}

// Reset drops all recorded writes.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Clip forwards writes inside Rect to Sink and drops the rest.
type Clip struct {
	Sink Sink
	Rect geom.Rect
}

// Draw implements Sink.
func (c Clip) Draw(p geom.Point, col Color) {
	if c.Rect.Contains(p) {
		c.Sink.Draw(p, col)
	}
}
