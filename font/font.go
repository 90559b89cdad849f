// Package font supplies glyph metrics and coverage bitmaps to the text
// layout engine.
//
// A Font pairs a Provider, which knows how to look up and rasterize glyphs,
// with the pixel size the text is rendered at. New builds a Font over a
// TrueType or OpenType byte buffer using golang.org/x/image/font/sfnt; any
// other rasterizer can be plugged in with NewWithProvider.
//
// Fonts are not safe for concurrent use.
package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for the font package.
var (
	// ErrFontInfo is returned when the font tables needed for metrics are
	// missing or unusable.
	ErrFontInfo = errors.New("font: invalid font info")

	// ErrParse is returned when the font data cannot be parsed.
	ErrParse = errors.New("font: parse failed")

	// ErrRasterize is returned when a glyph outline cannot be rasterized.
	ErrRasterize = errors.New("font: rasterize failed")

	// ErrSize is returned for a zero pixel size.
	ErrSize = errors.New("font: size must be positive")
)

// GlyphID indexes a glyph in a font. Glyph 0 is the notdef glyph.
type GlyphID uint16

// Metrics holds the horizontal metrics of a glyph at a given pixel size.
// Top is the signed distance from the baseline to the top of the glyph
// bitmap; it is negative for glyphs rising above the baseline.
type Metrics struct {
	Advance int
	Left    int
	Top     int
}

// Bitmap is a rasterized glyph: Width*Height coverage values in row-major
// order, 0 meaning uncovered and 255 fully covered. Left and Top place the
// bitmap relative to the pen position on the baseline.
type Bitmap struct {
	Width, Height int
	Left, Top     int
	Coverage      []byte
}

// At returns the coverage at (x, y), or 0 outside the bitmap.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Coverage[y*b.Width+x]
}

// Provider looks up and rasterizes glyphs.
//
// GlyphIndex never fails: runes missing from the font map to glyph 0.
// Kern returns 0 when the font has no adjustment for the pair.
type Provider interface {
	GlyphIndex(r rune) GlyphID
	Metrics(id GlyphID, size uint16) (Metrics, error)
	Kern(a, b GlyphID, size uint16) int
	Rasterize(id GlyphID, size uint16) (Bitmap, error)
}

// Font is a glyph provider bound to a rendering pixel size. A Font is
// immutable once built.
type Font struct {
	p    Provider
	size uint16
}

// New parses ttf and returns a Font rendering at size pixels per em.
// It fails with ErrParse or ErrFontInfo; no partial Font is returned.
func New(ttf []byte, size uint16) (*Font, error) {
	if size == 0 {
		return nil, ErrSize
	}
	p, err := parseSFNT(ttf)
	if err != nil {
		return nil, err
	}
	return &Font{p: p, size: size}, nil
}

// NewWithProvider returns a Font over an existing provider.
func NewWithProvider(p Provider, size uint16) (*Font, error) {
	if p == nil {
		return nil, errors.New("font: nil provider")
	}
	if size == 0 {
		return nil, ErrSize
	}
	return &Font{p: p, size: size}, nil
}

// Size returns the pixel size. It is also the line height.
func (f *Font) Size() uint16 {
	return f.size
}

// GlyphIndex returns the glyph for r, or 0 if the font lacks it.
func (f *Font) GlyphIndex(r rune) GlyphID {
	return f.p.GlyphIndex(r)
}

// Metrics returns the metrics of id at the font's size.
func (f *Font) Metrics(id GlyphID) (Metrics, error) {
	return f.p.Metrics(id, f.size)
}

// Kern returns the pair adjustment between a and b in pixels.
func (f *Font) Kern(a, b GlyphID) int {
	return f.p.Kern(a, b, f.size)
}

// Rasterize renders id at the font's size.
func (f *Font) Rasterize(id GlyphID) (Bitmap, error) {
	return f.p.Rasterize(id, f.size)
}

func (f *Font) String() string {
	return fmt.Sprintf("font.Font{%dpx}", f.size)
}
