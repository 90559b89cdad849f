// Package pixel defines the color type shared by every drawing path, the
// coverage compositor used for anti-aliased text, and the Sink interface
// through which all drawing reaches a surface.
package pixel

import (
	"fmt"

	"periph.io/x/devices/v3/ltdc/argb1555"
)

// Color is an 8-bit per channel color with straight (non-premultiplied)
// alpha.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Color{A: 0xFF}
	White       = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Transparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// ARGB1555 packs c into the 16-bit device format.
func (c Color) ARGB1555() argb1555.Color {
	return argb1555.FromRGBA8(c.R, c.G, c.B, c.A)
}

// RGB888 packs the color channels as 0x00RRGGBB, the layout of the
// controller's background color register.
func (c Color) RGB888() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * uint32(c.A) / 0xFF
	g = uint32(c.G) * uint32(c.A) / 0xFF
	b = uint32(c.B) * uint32(c.A) / 0xFF
	a = uint32(c.A)
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

const (
	blendScale = 1000
	blendFull  = 255 * blendScale
)

// Blend mixes fg over bg with weight w, where 0 yields bg and 255 yields
// fg. Each channel is computed with integer arithmetic and rounded to the
// nearest value. The result is monotonic in w.
func Blend(fg, bg Color, w uint8) Color {
	return Color{
		R: blend8(fg.R, bg.R, w),
		G: blend8(fg.G, bg.G, w),
		B: blend8(fg.B, bg.B, w),
		A: blend8(fg.A, bg.A, w),
	}
}

func blend8(fg, bg, w uint8) uint8 {
	wf := uint32(w) * blendScale
	wb := blendFull - wf
	n := uint32(fg)*wf + uint32(bg)*wb
	return uint8((n + blendFull/2) / blendFull)
}
