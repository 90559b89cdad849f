package font

import (
	"fmt"
	"image"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"periph.io/x/devices/v3/ltdc/internal/logger"
)

// sfntProvider implements Provider using golang.org/x/image/font/sfnt for
// outlines and metrics and golang.org/x/image/vector for coverage.
type sfntProvider struct {
	f   *sfnt.Font
	buf sfnt.Buffer
}

func parseSFNT(ttf []byte) (*sfntProvider, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	p := &sfntProvider{f: f}
	if f.NumGlyphs() == 0 || f.UnitsPerEm() == 0 {
		return nil, fmt.Errorf("%w: no glyphs or zero units per em", ErrFontInfo)
	}
	if _, err := f.Metrics(&p.buf, fixed.I(int(f.UnitsPerEm())), xfont.HintingNone); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontInfo, err)
	}

	name, _ := f.Name(&p.buf, sfnt.NameIDFull)
	logger.L().Debug("font: parsed", "name", name, "glyphs", f.NumGlyphs(), "unitsPerEm", f.UnitsPerEm())
	return p, nil
}

// GlyphIndex implements Provider.GlyphIndex.
func (p *sfntProvider) GlyphIndex(r rune) GlyphID {
	idx, err := p.f.GlyphIndex(&p.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// Metrics implements Provider.Metrics.
func (p *sfntProvider) Metrics(id GlyphID, size uint16) (Metrics, error) {
	bounds, advance, err := p.f.GlyphBounds(&p.buf, sfnt.GlyphIndex(id), fixed.I(int(size)), xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("font: metrics of glyph %d: %w", id, err)
	}
	return Metrics{
		Advance: advance.Round(),
		Left:    bounds.Min.X.Floor(),
		Top:     bounds.Min.Y.Floor(),
	}, nil
}

// Kern implements Provider.Kern.
func (p *sfntProvider) Kern(a, b GlyphID, size uint16) int {
	k, err := p.f.Kern(&p.buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), fixed.I(int(size)), xfont.HintingNone)
	if err != nil {
		// sfnt.ErrNotFound for fonts without a kern table.
		return 0
	}
	return k.Round()
}

// Rasterize implements Provider.Rasterize.
func (p *sfntProvider) Rasterize(id GlyphID, size uint16) (Bitmap, error) {
	ppem := fixed.I(int(size))
	bounds, _, err := p.f.GlyphBounds(&p.buf, sfnt.GlyphIndex(id), ppem, xfont.HintingNone)
	if err != nil {
		return Bitmap{}, fmt.Errorf("%w: glyph %d: %v", ErrRasterize, id, err)
	}

	x0, y0 := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	x1, y1 := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	b := Bitmap{Left: x0, Top: y0}
	if x1 <= x0 || y1 <= y0 {
		// Blank glyph such as a space.
		return b, nil
	}

	segs, err := p.f.LoadGlyph(&p.buf, sfnt.GlyphIndex(id), ppem, nil)
	if err != nil {
		return Bitmap{}, fmt.Errorf("%w: glyph %d: %v", ErrRasterize, id, err)
	}

	b.Width, b.Height = x1-x0, y1-y0
	r := vector.NewRasterizer(b.Width, b.Height)
	r.DrawOp = draw.Src
	ox, oy := float32(x0), float32(y0)
	pt := func(q fixed.Point26_6) (float32, float32) {
		return float32(q.X)/64 - ox, float32(q.Y)/64 - oy
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, b.Width, b.Height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	b.Coverage = dst.Pix
	return b, nil
}
