package font

import "github.com/embedview/gfx"

// DrawGlyph draws a single character at cursor position (x, y), where y is
// the text baseline, and returns the horizontal advance for the next
// character.
//
// A code absent from the font draws nothing and returns 0. A present glyph
// always returns its XAdvance, even when its drawn region is empty (space).
// No clipping is performed here; out-of-range writes are the surface's to
// ignore.
func DrawGlyph(dst gfx.Surface, x, y int, code byte, f *Font, c gfx.Color) int {
	g, ok := f.Glyphs[code]
	if !ok {
		return 0
	}
	if g.Width == 0 || g.Height == 0 {
		return g.XAdvance
	}

	// Row-major walk of the glyph's MSB-first bit stream. A malformed
	// offset must not crash: bytes past the bitmap read as zero.
	bit := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			idx := g.Offset + bit/8
			if idx >= 0 && idx < len(f.Bitmap) && f.Bitmap[idx]&(0x80>>(bit%8)) != 0 {
				dst.SetPixel(x+g.XOffset+col, y+g.YOffset+row, c)
			}
			bit++
		}
	}
	return g.XAdvance
}

// DrawText draws a string with its baseline at y, starting at x. Each byte
// of s is one character code; codes absent from the font occupy no space.
func DrawText(dst gfx.Surface, s string, x, y int, f *Font, c gfx.Color) {
	cursorX := x
	for i := 0; i < len(s); i++ {
		cursorX += DrawGlyph(dst, cursorX, y, s[i], f, c)
	}
}

// TextWidth returns the total horizontal advance of s: the sum of XAdvance
// over the characters present in the font. It equals the net cursor
// displacement DrawText produces for the same string.
func TextWidth(s string, f *Font) int {
	w := 0
	for i := 0; i < len(s); i++ {
		if g, ok := f.Glyphs[s[i]]; ok {
			w += g.XAdvance
		}
	}
	return w
}

// TextBounds measures s without drawing. Width is TextWidth; YMin and YMax
// are the union of per-glyph ink extents relative to the baseline (YOffset
// to YOffset+Height), so a caller can position text to avoid clipping
// ascenders and descenders regardless of character widths.
//
// A string with no character present in the font yields the zero Bounds;
// that is the documented empty result, not an error.
func TextBounds(s string, f *Font) Bounds {
	var b Bounds
	first := true
	for i := 0; i < len(s); i++ {
		g, ok := f.Glyphs[s[i]]
		if !ok {
			continue
		}
		b.Width += g.XAdvance
		top := g.YOffset
		bottom := g.YOffset + g.Height
		if first {
			b.YMin, b.YMax = top, bottom
			first = false
			continue
		}
		if top < b.YMin {
			b.YMin = top
		}
		if bottom > b.YMax {
			b.YMax = bottom
		}
	}
	b.Height = b.YMax - b.YMin
	return b
}

// DrawTextCentered draws s centered within the span [x, x+width), baseline
// at y. The start offset uses floor division, so when the leftover space
// is odd the extra pixel ends up on the right.
func DrawTextCentered(dst gfx.Surface, s string, x, y, width int, f *Font, c gfx.Color) {
	pad := width - TextWidth(s, f)
	DrawText(dst, s, x+floorHalf(pad), y, f, c)
}

// DrawTextRightAligned draws s so that its advance ends at rightX,
// baseline at y.
func DrawTextRightAligned(dst gfx.Surface, s string, rightX, y int, f *Font, c gfx.Color) {
	DrawText(dst, s, rightX-TextWidth(s, f), y, f, c)
}

// floorHalf is n/2 rounded toward negative infinity. Go's integer division
// truncates toward zero, which differs for negative odd values.
func floorHalf(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
