package text

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/ltdc/font"
)

// Sentinel errors for the text package.
var (
	// ErrNoFont is returned when a TextBox has no font.
	ErrNoFont = errors.New("text: no font")

	// ErrInvalidCanvas is returned when the canvas far edges overflow the
	// coordinate type.
	ErrInvalidCanvas = errors.New("text: invalid canvas")
)

// GlyphError reports a glyph the font provider could not measure or
// rasterize. The text operation stops at the failing glyph.
type GlyphError struct {
	Rune  rune
	Glyph font.GlyphID
	Err   error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: glyph %q (id %d): %v", e.Rune, e.Glyph, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
