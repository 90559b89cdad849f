// Package ltdc drives a memory-mapped LCD-TFT display controller (LTDC).
//
// The controller scans out two layers of 16-bit ARGB1555 pixels stored in
// memory. This package addresses pixels in either layer, draws points,
// lines and rectangles, and, together with the text sub-package, renders
// aligned, wrapped and anti-aliased text.
//
// # Display Characteristics
//
// - Two layers, each a full frame, placed one after the other in memory
// - ARGB1555 pixels (1 alpha bit, 5 bits per color channel)
// - A background color register shown where no layer is opaque
// - Optional display enable and backlight GPIO pins
//
// # Memory
//
// A Dev draws into a Memory. Three backends are provided:
//
//	ltdc.MapPhysical(0xC0000000, 480, 272, 0x40016800) // /dev/mem, periph.io/x/host/v3/pmem
//	ltdc.OpenFramebuffer("/dev/fb0", 480, 272)         // Linux fbdev
//	ltdc.NewRAM(480, 272)                              // simulation and tests
//
// # Basic Usage
//
//	package main
//
//	import (
//		"golang.org/x/image/font/gofont/goregular"
//		"periph.io/x/devices/v3/ltdc"
//		"periph.io/x/devices/v3/ltdc/font"
//		"periph.io/x/devices/v3/ltdc/geom"
//		"periph.io/x/devices/v3/ltdc/pixel"
//		"periph.io/x/devices/v3/ltdc/text"
//	)
//
//	func main() {
//		mem, _ := ltdc.MapPhysical(ltdc.DefaultFramebufferBase, 480, 272, 0x40016800)
//		dev, _ := ltdc.New(mem, nil)
//		defer dev.Close()
//
//		f, _ := font.New(goregular.TTF, 24)
//		tb := &text.TextBox{
//			Canvas:    geom.R(10, 10, 460, 100),
//			Alignment: text.Center,
//			Font:      f,
//			FG:        pixel.White,
//			BG:        pixel.Black,
//		}
//
//		// Draw in the hidden layer, then show it.
//		back := dev.Back()
//		dev.FillRect(dev.Rect(), back, pixel.Black.ARGB1555())
//		tb.Redraw(dev.Sink(back), "Hello\nworld")
//		dev.Swap()
//	}
//
// # Out of Range Points
//
// Every public drawing call clips silently: points outside the display are
// not written. DrawLine is stricter and draws nothing when an endpoint is
// off the display. AddrOf panics on an out-of-range point since callers are
// expected to check bounds first.
//
// # Halt and Close
//
// After Halt, pixel writes (WritePixel, DrawPoint, FillRect, DrawLine,
// ClearScreen and layer sinks) are ignored and Snapshot returns a blank
// image. Draw, Show, Swap, SetBackground, Enable and Backlight return
// ErrHalted. Close also releases the memory mapping; the same rules apply
// afterwards, so a stray write never touches unmapped memory.
//
// # Double Buffering
//
// Front returns the layer being shown and Back the hidden one. Draw the
// next frame into Back, then call Swap; the layer switch is latched at the
// next vertical blanking period.
//
// # Compatibility with periph.io
//
// Dev implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// Draw writes to the back layer.
package ltdc
