package text

import (
	"math"

	"periph.io/x/devices/v3/ltdc/font"
	"periph.io/x/devices/v3/ltdc/geom"
	"periph.io/x/devices/v3/ltdc/internal/logger"
	"periph.io/x/devices/v3/ltdc/pixel"
)

// spacePlaceholder is measured in place of a space. Its advance is used,
// nothing of it is drawn.
const spacePlaceholder = '-'

// box is a half-open rectangle in signed coordinates. Glyph bearings can
// place bitmaps before the pen, so glyph geometry is computed here before
// being clipped to the walk bounds.
type box struct {
	x0, y0, x1, y1 int
}

func (b box) contains(x, y int) bool {
	return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1
}

func (b box) union(c box) box {
	return box{min(b.x0, c.x0), min(b.y0, c.y0), max(b.x1, c.x1), max(b.y1, c.y1)}
}

func (b box) intersect(c box) box {
	return box{max(b.x0, c.x0), max(b.y0, c.y0), min(b.x1, c.x1), min(b.y1, c.y1)}
}

// writer is the state of one glyph walk.
type writer struct {
	font   *font.Font
	sink   pixel.Sink
	fg, bg pixel.Color
	center bool

	// bounds is the walk canvas. Pixels outside it are never emitted.
	bounds box

	penX, penY int

	prev    font.GlyphID
	hasPrev bool
}

// walk lays out text from the upper-left corner of the walk canvas,
// emitting pixels to the sink. It stops silently when the next line does not
// fit vertically.
func (w *writer) walk(text string) error {
	size := int(w.font.Size())
	w.penX, w.penY = w.bounds.x0, w.bounds.y0
	w.hasPrev = false

	for i, r := range text {
		// Explicit line break: nothing is drawn
		if r == '\n' {
			w.newline(size)
			continue
		}

		// A space is measured with the placeholder glyph and only its
		// background is painted
		render := r != ' '
		id := w.font.GlyphIndex(r)
		if !render {
			id = w.font.GlyphIndex(spacePlaceholder)
		}

		m, err := w.font.Metrics(id)
		if err != nil {
			return &GlyphError{Rune: r, Glyph: id, Err: err}
		}
		advance := max(m.Advance, 0)

		// Kerning moves the pen before the wrap check. The pen never
		// moves left of the line start.
		if render && w.hasPrev {
			w.penX = max(w.penX+w.font.Kern(w.prev, id), w.bounds.x0)
		}

		// Wrap when the advance overflows the right edge, unless the
		// line is still empty and the glyph could never fit
		if w.penX+advance > w.bounds.x1 && w.penX > w.bounds.x0 {
			w.newline(size)
			if !render {
				// A space that does not fit ends the line.
				continue
			}
		}

		// Truncate once the current line does not fit vertically. This
		// runs after wrapping so a wrapped glyph is checked on its new line.
		if w.penY+size > w.bounds.y1 {
			logger.L().Debug("text: truncated", "offset", i, "dropped", len(text)-i)
			return nil
		}

		if render {
			bm, err := w.font.Rasterize(id)
			if err != nil {
				return &GlyphError{Rune: r, Glyph: id, Err: err}
			}
			w.drawGlyph(&bm, advance, size)
			w.prev, w.hasPrev = id, true
		} else {
			w.fillCell(advance, size)
			w.hasPrev = false
		}

		w.penX += advance
	}
	return nil
}

func (w *writer) newline(size int) {
	w.penX = w.bounds.x0
	w.penY += size
	w.hasPrev = false
}

// cell returns the advance cell at the pen: one advance wide, one line
// high.
func (w *writer) cell(advance, size int) box {
	return box{w.penX, w.penY, w.penX + advance, w.penY + size}
}

// fillCell paints the advance cell with the background color.
func (w *writer) fillCell(advance, size int) {
	c := w.cell(advance, size).intersect(w.bounds)
	for y := c.y0; y < c.y1; y++ {
		for x := c.x0; x < c.x1; x++ {
			w.emit(x, y, w.bg)
		}
	}
}

// drawGlyph blends the bitmap over the background and paints the rest of
// the advance cell with the background, row by row.
func (w *writer) drawGlyph(bm *font.Bitmap, advance, size int) {
	left := bm.Left
	if w.center {
		left = (advance - bm.Width) / 2
	}
	// The baseline sits one line height below the pen; Top is negative
	// for ink above it.
	gx, gy := w.penX+left, w.penY+size+bm.Top
	glyph := box{gx, gy, gx + bm.Width, gy + bm.Height}
	cell := w.cell(advance, size)

	// Bearings can push the bitmap outside the cell, so walk the union of
	// both and clip it to the canvas.
	area := cell.union(glyph).intersect(w.bounds)
	for y := area.y0; y < area.y1; y++ {
		for x := area.x0; x < area.x1; x++ {
			switch {
			case glyph.contains(x, y):
				w.emit(x, y, pixel.Blend(w.fg, w.bg, bm.At(x-gx, y-gy)))
			case cell.contains(x, y):
				w.emit(x, y, w.bg)
			}
		}
	}
}

func (w *writer) emit(x, y int, c pixel.Color) {
	if x > math.MaxUint16 || y > math.MaxUint16 {
		return
	}
	w.sink.Draw(geom.Point{X: uint16(x), Y: uint16(y)}, c)
}
