// Package preview shows pixels in a terminal.
//
// Each terminal cell holds two vertically stacked pixels drawn with the
// upper half block rune: the foreground color is the upper pixel and the
// background color the lower one. A 480x272 frame needs a 480x136 terminal;
// pixels that do not fit are dropped.
package preview

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"periph.io/x/devices/v3/ltdc/geom"
	"periph.io/x/devices/v3/ltdc/internal/logger"
	"periph.io/x/devices/v3/ltdc/pixel"
)

const upperHalf = '▀'

// Screen is a pixel.Sink backed by a tcell screen.
type Screen struct {
	s    tcell.Screen
	rect geom.Rect
	pix  []pixel.Color
}

var _ pixel.Sink = (*Screen)(nil)

// New opens the terminal and returns a w x h pixel Screen.
func New(w, h uint16) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return NewWithScreen(s, w, h), nil
}

// NewWithScreen wraps an initialized tcell screen.
func NewWithScreen(s tcell.Screen, w, h uint16) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	s.Clear()
	return &Screen{
		s:    s,
		rect: geom.R(0, 0, w, h),
		pix:  make([]pixel.Color, int(w)*int(h)),
	}
}

// Rect returns the pixel area of the screen.
func (p *Screen) Rect() geom.Rect {
	return p.rect
}

// Draw implements pixel.Sink. The change is visible after Show.
func (p *Screen) Draw(pt geom.Point, c pixel.Color) {
	if !p.rect.Contains(pt) {
		return
	}
	p.pix[int(pt.Y)*int(p.rect.Width)+int(pt.X)] = c
	p.paint(int(pt.X), int(pt.Y)/2)
}

// DrawImage copies img, anchored at its Min point, onto the screen.
func (p *Screen) DrawImage(img image.Image) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x-b.Min.X > 0xFFFF || y-b.Min.Y > 0xFFFF {
				continue
			}
			r, g, bl, a := img.At(x, y).RGBA()
			c := pixel.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}
			p.Draw(geom.Pt(uint16(x-b.Min.X), uint16(y-b.Min.Y)), c)
		}
	}
}

// At returns the last color drawn at pt.
func (p *Screen) At(pt geom.Point) pixel.Color {
	if !p.rect.Contains(pt) {
		return pixel.Transparent
	}
	return p.pix[int(pt.Y)*int(p.rect.Width)+int(pt.X)]
}

// paint refreshes the terminal cell holding pixel rows 2*row and 2*row+1.
func (p *Screen) paint(x, row int) {
	top := p.At(geom.Pt(uint16(x), uint16(2*row)))
	bottom := pixel.Transparent
	if y := 2*row + 1; y < int(p.rect.Height) {
		bottom = p.At(geom.Pt(uint16(x), uint16(y)))
	}
	style := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bottom))
	p.s.SetContent(x, row, upperHalf, nil, style)
}

// termColor composites c over black.
func termColor(c pixel.Color) tcell.Color {
	o := pixel.Blend(c, pixel.Black, c.A)
	return tcell.NewRGBColor(int32(o.R), int32(o.G), int32(o.B))
}

// Show flushes drawn pixels to the terminal.
func (p *Screen) Show() {
	p.s.Show()
}

// Wait blocks until a key that ends the preview is pressed: Escape, q or
// Ctrl+C. The screen is redrawn on resize.
func (p *Screen) Wait() {
	for {
		switch ev := p.s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			p.s.Sync()
		case *tcell.EventKey:
			logger.L().Debug("preview: key", "name", ev.Name())
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		}
	}
}

// Close restores the terminal.
func (p *Screen) Close() error {
	p.s.Fini()
	return nil
}
