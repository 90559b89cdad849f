// Package text lays out and renders proportional text on a pixel sink.
//
// Rendering is done in two passes over the same glyph walk. The first pass
// only measures: it records the bounding box of every pixel the text would
// touch. That box is aligned inside the requested canvas, cleared to the
// background color, and the second pass draws the glyphs into it. Nothing
// is buffered between the passes.
package text

import (
	"fmt"

	"periph.io/x/devices/v3/ltdc/font"
	"periph.io/x/devices/v3/ltdc/geom"
	"periph.io/x/devices/v3/ltdc/pixel"
)

// Alignment is the horizontal placement of the text inside its canvas.
type Alignment uint8

const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) String() string {
	switch a {
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// ParseAlignment returns the Alignment named s ("left", "center", "right").
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left", "Left":
		return Left, nil
	case "center", "Center":
		return Center, nil
	case "right", "Right":
		return Right, nil
	}
	return Left, fmt.Errorf("text: unknown alignment %q", s)
}

// TextBox describes one text rendering request. It is not modified by
// rendering.
type TextBox struct {
	// Canvas is the area the text is laid out in. Text wraps at its right
	// edge and is truncated at its bottom edge.
	Canvas    geom.Rect
	Alignment Alignment
	Font      *font.Font
	BG, FG    pixel.Color

	// CenterGlyphs centers each glyph bitmap in its advance cell instead of
	// placing it at its left bearing.
	CenterGlyphs bool
}

func (tb *TextBox) validate() error {
	if tb.Font == nil {
		return ErrNoFont
	}
	if !tb.Canvas.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidCanvas, tb.Canvas)
	}
	return nil
}

// Measure returns the bounding box of every pixel text would touch when
// laid out from the canvas origin. The box always starts at the canvas
// origin.
func (tb *TextBox) Measure(text string) (geom.Rect, error) {
	if err := tb.validate(); err != nil {
		return geom.Rect{}, err
	}
	acc := pixel.NewBounds(tb.Canvas.Origin)
	w := tb.newWriter(tb.Canvas.Origin, acc)
	if err := w.walk(text); err != nil {
		return geom.Rect{}, err
	}
	return acc.Rect, nil
}

// offset returns the horizontal shift that aligns eff within the canvas.
func (tb *TextBox) offset(eff geom.Rect) uint16 {
	if eff.Width >= tb.Canvas.Width {
		return 0
	}
	switch tb.Alignment {
	case Center:
		return (tb.Canvas.Width - eff.Width) / 2
	case Right:
		return tb.Canvas.Width - eff.Width
	default:
		return 0
	}
}

// Layout returns the aligned canvas: the measured box of text moved to its
// aligned position. Redraw clears exactly this rectangle.
func (tb *TextBox) Layout(text string) (geom.Rect, error) {
	eff, err := tb.Measure(text)
	if err != nil {
		return geom.Rect{}, err
	}
	return eff.Translate(tb.offset(eff), 0), nil
}

// Redraw renders text to s. It first clears the aligned canvas to BG and
// then draws every glyph pixel, blending FG over BG by glyph coverage.
//
// A glyph that cannot be rasterized stops the operation with a
// *GlyphError. Since every glyph is rasterized while measuring, such an
// error is returned before anything is written to s.
func (tb *TextBox) Redraw(s pixel.Sink, text string) error {
	aligned, err := tb.Layout(text)
	if err != nil {
		return err
	}

	pixel.Fill(s, aligned, tb.BG)

	w := tb.newWriter(aligned.Origin, s)
	return w.walk(text)
}

// newWriter returns a glyph walk starting at origin over a canvas the size
// of tb.Canvas. Both passes use the same extent so they wrap and truncate
// at the same places.
func (tb *TextBox) newWriter(origin geom.Point, s pixel.Sink) *writer {
	x, y := int(origin.X), int(origin.Y)
	return &writer{
		font:   tb.Font,
		sink:   s,
		fg:     tb.FG,
		bg:     tb.BG,
		center: tb.CenterGlyphs,
		bounds: box{x0: x, y0: y, x1: x + int(tb.Canvas.Width), y1: y + int(tb.Canvas.Height)},
	}
}
