package pixel

import (
	"periph.io/x/devices/v3/ltdc/geom"
)

// Fill writes c to every point of r in row-major order.
func Fill(s Sink, r geom.Rect, c Color) {
	for p := range r.Points() {
		s.Draw(p, c)
	}
}

// DrawLine writes c to every point of l, both endpoints included.
func DrawLine(s Sink, l geom.Line, c Color) {
	for p := range l.Points() {
		s.Draw(p, c)
	}
}

// StrokeRect draws the one pixel outline of r.
func StrokeRect(s Sink, r geom.Rect, c Color) {
	if r.Empty() {
		return
	}
	ul := r.Origin
	ur := geom.Pt(r.Origin.X+r.Width-1, r.Origin.Y)
	lr := geom.Pt(r.Origin.X+r.Width-1, r.Origin.Y+r.Height-1)
	ll := geom.Pt(r.Origin.X, r.Origin.Y+r.Height-1)

	DrawLine(s, geom.Line{From: ul, To: ur}, c)
	if r.Height == 1 {
		return
	}
	DrawLine(s, geom.Line{From: ll, To: lr}, c)
	if r.Height == 2 {
		return
	}
	inner := geom.Pt(0, 1)
	DrawLine(s, geom.Line{From: ul.Add(inner), To: geom.Pt(ll.X, ll.Y-1)}, c)
	if r.Width > 1 {
		DrawLine(s, geom.Line{From: ur.Add(inner), To: geom.Pt(lr.X, lr.Y-1)}, c)
	}
}
