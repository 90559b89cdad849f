package pixel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"periph.io/x/devices/v3/ltdc/argb1555"
	"periph.io/x/devices/v3/ltdc/geom"
)

func TestBlendEndpoints(t *testing.T) {
	pairs := []struct{ fg, bg Color }{
		{White, Black},
		{RGB(10, 200, 30), RGB(250, 5, 128)},
		{Color{1, 2, 3, 4}, Color{254, 253, 252, 251}},
		{Transparent, White},
	}

	for _, p := range pairs {
		if got := Blend(p.fg, p.bg, 0); got != p.bg {
			t.Errorf("Blend(%v, %v, 0) = %v, want %v", p.fg, p.bg, got, p.bg)
		}
		if got := Blend(p.fg, p.bg, 255); got != p.fg {
			t.Errorf("Blend(%v, %v, 255) = %v, want %v", p.fg, p.bg, got, p.fg)
		}
	}
}

func TestBlendMonotonic(t *testing.T) {
	fg, bg := RGB(240, 10, 128), RGB(3, 250, 128)
	prev := Blend(fg, bg, 0)
	for w := 1; w < 256; w++ {
		c := Blend(fg, bg, uint8(w))
		if c.R < prev.R {
			t.Fatalf("red decreased at weight %d: %d -> %d", w, prev.R, c.R)
		}
		if c.G > prev.G {
			t.Fatalf("green increased at weight %d: %d -> %d", w, prev.G, c.G)
		}
		if c.B != 128 {
			t.Fatalf("equal channels changed at weight %d: %d", w, c.B)
		}
		prev = c
	}
}

func TestBlendRounding(t *testing.T) {
	tests := []struct {
		fg, bg, w, want uint8
	}{
		{255, 0, 128, 128}, // 127.998...
		{255, 0, 127, 127},
		{100, 0, 51, 20},
		{1, 0, 128, 1}, // 0.502 rounds up
		{1, 0, 127, 0},
		{0, 255, 1, 254},
	}

	for _, tt := range tests {
		got := Blend(Color{R: tt.fg}, Color{R: tt.bg}, tt.w).R
		if got != tt.want {
			t.Errorf("blend(%d, %d, %d) = %d, want %d", tt.fg, tt.bg, tt.w, got, tt.want)
		}
	}
}

func TestColorPacking(t *testing.T) {
	if got, want := White.ARGB1555(), argb1555.Color(0xFFFF); got != want {
		t.Errorf("White.ARGB1555() = %v, want %v", got, want)
	}
	if got, want := RGB(0x12, 0x34, 0x56).RGB888(), uint32(0x123456); got != want {
		t.Errorf("RGB888() = 0x%06X, want 0x%06X", got, want)
	}
}

func TestBoundsSink(t *testing.T) {
	b := NewBounds(geom.Pt(10, 10))
	for _, p := range []geom.Point{geom.Pt(12, 11), geom.Pt(15, 10), geom.Pt(11, 14)} {
		b.Draw(p, White)
	}
	if want := geom.R(10, 10, 6, 5); b.Rect != want {
		t.Errorf("Rect = %v, want %v", b.Rect, want)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Draw(geom.Pt(1, 1), White)
	r.Draw(geom.Pt(2, 1), Black)
	r.Draw(geom.Pt(1, 1), Black)

	want := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	if diff := cmp.Diff(want, r.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
	if got := r.Last()[geom.Pt(1, 1)]; got != Black {
		t.Errorf("Last()[(1,1)] = %v, want %v", got, Black)
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("after Reset, len(Ops) = %d", len(r.Ops))
	}
}

func TestClip(t *testing.T) {
	var r Recorder
	c := Clip{Sink: &r, Rect: geom.R(0, 0, 2, 2)}
	DrawLine(c, geom.Line{From: geom.Pt(0, 0), To: geom.Pt(5, 0)}, White)

	want := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if diff := cmp.Diff(want, r.Points()); diff != "" {
		t.Errorf("clipped points mismatch (-want +got):\n%s", diff)
	}
}

func TestFill(t *testing.T) {
	var r Recorder
	Fill(&r, geom.R(3, 3, 2, 2), White)

	want := []Op{
		{geom.Pt(3, 3), White}, {geom.Pt(4, 3), White},
		{geom.Pt(3, 4), White}, {geom.Pt(4, 4), White},
	}
	if diff := cmp.Diff(want, r.Ops); diff != "" {
		t.Errorf("Fill mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name string
		l    geom.Line
		want int
	}{
		{"point", geom.Line{From: geom.Pt(0, 0), To: geom.Pt(0, 0)}, 1},
		{"horizontal", geom.Line{From: geom.Pt(0, 0), To: geom.Pt(5, 0)}, 6},
		{"diagonal", geom.Line{From: geom.Pt(0, 0), To: geom.Pt(3, 3)}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Recorder
			DrawLine(&r, tt.l, White)
			if len(r.Ops) != tt.want {
				t.Errorf("DrawLine wrote %d points, want %d", len(r.Ops), tt.want)
			}
		})
	}
}

func TestStrokeRect(t *testing.T) {
	tests := []struct {
		r    geom.Rect
		want int
	}{
		{geom.R(0, 0, 4, 3), 10},
		{geom.R(0, 0, 1, 1), 1},
		{geom.R(0, 0, 5, 1), 5},
		{geom.R(0, 0, 1, 4), 4},
		{geom.R(0, 0, 3, 0), 0},
	}

	for _, tt := range tests {
		var r Recorder
		StrokeRect(&r, tt.r, White)
		got := r.Last()
		if len(got) != tt.want {
			t.Errorf("StrokeRect(%v) touched %d points, want %d", tt.r, len(got), tt.want)
		}
		for p := range got {
			if !tt.r.Contains(p) {
				t.Errorf("StrokeRect(%v) wrote %v outside rect", tt.r, p)
			}
		}
	}
}
