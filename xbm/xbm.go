// Package xbm decodes packed monochrome images in the XBitmap convention:
// one bit per pixel, row-major, rows padded to whole bytes, and bits taken
// LSB-first within each byte. This is the opposite bit order from GFXfont
// glyphs; the two formats are unrelated and share no decoding code.
package xbm

import "github.com/embedview/gfx"

// Draw blits a w x h packed image with its top-left corner at (x, y).
// Set bits are drawn in color c; clear bits are transparent, leaving the
// surface untouched rather than painting a background.
//
// The row stride is (w+7)/8 bytes. Bytes missing from a short bits slice
// read as zero, so a truncated image draws its prefix and nothing else.
func Draw(dst gfx.Surface, x, y int, bits []byte, w, h int, c gfx.Color) {
	stride := (w + 7) / 8
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*stride + col/8
			if idx < len(bits) && bits[idx]&(1<<(col%8)) != 0 {
				dst.SetPixel(x+col, y+row, c)
			}
		}
	}
}

// DrawScaled blits a sw x sh packed image resized to dw x dh using
// nearest-neighbor sampling: destination pixel (dc, dr) reads source pixel
// (dc*sw/dw, dr*sh/dh) with integer floor division. No interpolation.
//
// A non-positive destination dimension draws nothing. At identical source
// and destination dimensions the result is pixel-for-pixel the same as
// Draw.
func DrawScaled(dst gfx.Surface, x, y int, bits []byte, sw, sh, dw, dh int, c gfx.Color) {
	stride := (sw + 7) / 8
	for dr := 0; dr < dh; dr++ {
		sr := dr * sh / dh
		for dc := 0; dc < dw; dc++ {
			sc := dc * sw / dw
			idx := sr*stride + sc/8
			if idx < len(bits) && bits[idx]&(1<<(sc%8)) != 0 {
				dst.SetPixel(x+dc, y+dr, c)
			}
		}
	}
}
