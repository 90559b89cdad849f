package argb1555

import (
	"fmt"
	"image"
	"image/color"
)

// Color is a packed ARGB1555 pixel.
type Color uint16

const (
	alphaBit = 0x8000
	mask5    = 0x1F
)

// FromRGBA8 packs 8-bit straight-alpha channels. The alpha bit is set when
// a is at least 128.
func FromRGBA8(r, g, b, a uint8) Color {
	c := Color(r>>3)<<10 | Color(g>>3)<<5 | Color(b>>3)
	if a >= 0x80 {
		c |= alphaBit
	}
	return c
}

// Opaque reports whether the alpha bit is set.
func (c Color) Opaque() bool {
	return c&alphaBit != 0
}

// RGBA8 unpacks c to 8-bit straight-alpha channels. 5-bit values are
// expanded by replicating their top bits, so 0x1F maps to 0xFF.
func (c Color) RGBA8() (r, g, b, a uint8) {
	r = expand5(uint8(c>>10) & mask5)
	g = expand5(uint8(c>>5) & mask5)
	b = expand5(uint8(c) & mask5)
	if c.Opaque() {
		a = 0xFF
	}
	return
}

// RGBA implements color.Color. A pixel without its alpha bit is fully
// transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.Opaque() {
		return 0, 0, 0, 0
	}
	r8, g8, b8, _ := c.RGBA8()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("argb1555(0x%04X)", uint16(c))
}

func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}

// toARGB1555 converts any color.Color to Color.
func toARGB1555(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color(0)
	}
	// RGBA is premultiplied, the pixel format is not.
	if a != 0xFFFF {
		r = r * 0xFFFF / a
		g = g * 0xFFFF / a
		b = b * 0xFFFF / a
	}
	return FromRGBA8(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toARGB1555)

// Image is an in-memory image of ARGB1555 pixels, laid out exactly like one
// LTDC layer: row-major, one halfword per pixel.
type Image struct {
	Pix    []uint16        // Pixel data, one element per pixel
	Stride int             // Elements per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]uint16, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.ARGB1555At(x, y)
}

// ARGB1555At returns the packed pixel at (x, y), or 0 outside the bounds.
func (p *Image) ARGB1555At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return Color(p.Pix[p.PixOffset(x, y)])
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint16(Model.Convert(c).(Color))
}

// SetARGB1555 sets the packed pixel at (x, y) without color conversion.
func (p *Image) SetARGB1555(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint16(c)
}

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
