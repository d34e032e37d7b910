// Package gfx emulates the pixel-level behavior of the Adafruit-GFX family
// of embedded graphics libraries, so that OLED and e-paper UI layouts can be
// previewed on a desktop without hardware.
//
// # Overview
//
// gfx provides a Surface abstraction over a rectangular grid of RGB565
// pixels, a concrete in-memory Display implementation with PNG export, and
// the integer shape primitives embedded panels are usually driven with
// (lines, rectangles, circles, triangles). Text and image decoding live in
// subpackages:
//
//   - font: bitmap font decoding and text layout (the GFXfont format plus
//     the classic built-in 5x7 font)
//   - font/gfxfont: extraction of GFXfont tables from C header files
//   - xbm: packed monochrome image (XBitmap) decoding
//
// # Quick Start
//
//	import (
//	    "github.com/embedview/gfx"
//	    "github.com/embedview/gfx/font"
//	)
//
//	// A 128x64 surface, the classic SSD1306 panel size.
//	d := gfx.NewDisplay(128, 64)
//	d.Clear(gfx.Black)
//
//	font.DrawBuiltinText(d, "HELLO", 4, 4, gfx.White)
//	gfx.DrawRect(d, 0, 0, 128, 64, gfx.White)
//
//	d.SavePNG("preview.png")
//
// # Fidelity
//
// The point of this library is bit-exact reproduction of the reference
// behavior, quirks included: glyph bitmaps are MSB-first, XBitmaps are
// LSB-first, the built-in font is column-major, and the built-in font
// advances the cursor for undefined code points while GFXfont text does
// not. None of these conventions are normalized; see the individual
// package documentation.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. All
// coordinates are integer pixels; there is no anti-aliasing and no
// sub-pixel positioning.
package gfx
