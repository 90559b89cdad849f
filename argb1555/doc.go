// Package argb1555 provides the 16-bit packed pixel format written to the
// LTDC framebuffers.
//
// Each pixel is one little-endian halfword:
//
//	bit   15    14..10   9..5    4..0
//	      A     R        G       B
//
// The single alpha bit selects between a transparent and an opaque pixel
// when the controller blends its two layers. Color channels keep the five
// most significant bits of their 8-bit value.
//
// This package provides:
//
// - Color: a packed ARGB1555 pixel
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image / draw.Image holding ARGB1555 pixels
//
// Example usage:
//
//	// Create a 480x272 image
//	img := argb1555.NewImage(image.Rect(0, 0, 480, 272))
//
//	// Set a pixel to opaque red
//	img.SetARGB1555(10, 20, argb1555.FromRGBA8(0xFF, 0, 0, 0xFF))
//
//	// Save it
//	png.Encode(w, img)
package argb1555
