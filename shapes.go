package gfx

// Shape primitives in the form embedded panels are driven with: integer
// Bresenham/midpoint algorithms issuing direct SetPixel and FillRect calls.
// All functions accept any Surface; clipping is the surface's job.

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm with the usual steep-slope coordinate swap.
func DrawLine(dst Surface, x0, y0, x1, y1 int, c Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			dst.SetPixel(y0, x0, c)
		} else {
			dst.SetPixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// DrawFastHLine draws a horizontal line of length w starting at (x, y).
func DrawFastHLine(dst Surface, x, y, w int, c Color) {
	dst.FillRect(x, y, w, 1, c)
}

// DrawFastVLine draws a vertical line of length h starting at (x, y).
func DrawFastVLine(dst Surface, x, y, h int, c Color) {
	dst.FillRect(x, y, 1, h, c)
}

// DrawRect draws the one-pixel outline of a w x h rectangle at (x, y).
func DrawRect(dst Surface, x, y, w, h int, c Color) {
	DrawFastHLine(dst, x, y, w, c)
	DrawFastHLine(dst, x, y+h-1, w, c)
	DrawFastVLine(dst, x, y, h, c)
	DrawFastVLine(dst, x+w-1, y, h, c)
}

// FillRect fills a w x h rectangle at (x, y).
func FillRect(dst Surface, x, y, w, h int, c Color) {
	dst.FillRect(x, y, w, h, c)
}

// DrawCircle draws the outline of a circle centered at (x0, y0) with
// radius r, using the midpoint algorithm.
func DrawCircle(dst Surface, x0, y0, r int, c Color) {
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x := 0
	y := r

	dst.SetPixel(x0, y0+r, c)
	dst.SetPixel(x0, y0-r, c)
	dst.SetPixel(x0+r, y0, c)
	dst.SetPixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		dst.SetPixel(x0+x, y0+y, c)
		dst.SetPixel(x0-x, y0+y, c)
		dst.SetPixel(x0+x, y0-y, c)
		dst.SetPixel(x0-x, y0-y, c)
		dst.SetPixel(x0+y, y0+x, c)
		dst.SetPixel(x0-y, y0+x, c)
		dst.SetPixel(x0+y, y0-x, c)
		dst.SetPixel(x0-y, y0-x, c)
	}
}

// FillCircle fills a circle centered at (x0, y0) with radius r.
func FillCircle(dst Surface, x0, y0, r int, c Color) {
	DrawFastVLine(dst, x0, y0-r, 2*r+1, c)
	fillCircleHelper(dst, x0, y0, r, 3, 0, c)
}

// fillCircleHelper fills circle quadrants. corners selects sides (bit 0 =
// right, bit 1 = left), delta stretches the circle vertically for rounded
// rectangles.
func fillCircleHelper(dst Surface, x0, y0, r int, corners uint8, delta int, c Color) {
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x := 0
	y := r
	px := x
	py := y

	delta++ // avoid some +1's in the loop

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		// Slightly tricky: avoid double-drawing the lines each quadrant
		// pass shares.
		if x < y+1 {
			if corners&1 != 0 {
				DrawFastVLine(dst, x0+x, y0-y, 2*y+delta, c)
			}
			if corners&2 != 0 {
				DrawFastVLine(dst, x0-x, y0-y, 2*y+delta, c)
			}
		}
		if y != py {
			if corners&1 != 0 {
				DrawFastVLine(dst, x0+py, y0-px, 2*px+delta, c)
			}
			if corners&2 != 0 {
				DrawFastVLine(dst, x0-py, y0-px, 2*px+delta, c)
			}
			py = y
		}
		px = x
	}
}

// drawCircleHelper draws circle quadrant arcs for rounded rectangle
// corners. cornername selects the quadrant (1=top-left, 2=top-right,
// 4=bottom-right, 8=bottom-left).
func drawCircleHelper(dst Surface, x0, y0, r int, cornername uint8, c Color) {
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		if cornername&4 != 0 {
			dst.SetPixel(x0+x, y0+y, c)
			dst.SetPixel(x0+y, y0+x, c)
		}
		if cornername&2 != 0 {
			dst.SetPixel(x0+x, y0-y, c)
			dst.SetPixel(x0+y, y0-x, c)
		}
		if cornername&8 != 0 {
			dst.SetPixel(x0-y, y0+x, c)
			dst.SetPixel(x0-x, y0+y, c)
		}
		if cornername&1 != 0 {
			dst.SetPixel(x0-y, y0-x, c)
			dst.SetPixel(x0-x, y0-y, c)
		}
	}
}

// DrawRoundRect draws the outline of a rectangle with rounded corners of
// radius r.
func DrawRoundRect(dst Surface, x, y, w, h, r int, c Color) {
	maxR := min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	DrawFastHLine(dst, x+r, y, w-2*r, c)
	DrawFastHLine(dst, x+r, y+h-1, w-2*r, c)
	DrawFastVLine(dst, x, y+r, h-2*r, c)
	DrawFastVLine(dst, x+w-1, y+r, h-2*r, c)
	drawCircleHelper(dst, x+r, y+r, r, 1, c)
	drawCircleHelper(dst, x+w-r-1, y+r, r, 2, c)
	drawCircleHelper(dst, x+w-r-1, y+h-r-1, r, 4, c)
	drawCircleHelper(dst, x+r, y+h-r-1, r, 8, c)
}

// FillRoundRect fills a rectangle with rounded corners of radius r.
func FillRoundRect(dst Surface, x, y, w, h, r int, c Color) {
	maxR := min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	dst.FillRect(x+r, y, w-2*r, h, c)
	fillCircleHelper(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	fillCircleHelper(dst, x+r, y+r, r, 2, h-2*r-1, c)
}

// DrawTriangle draws the outline of a triangle.
func DrawTriangle(dst Surface, x0, y0, x1, y1, x2, y2 int, c Color) {
	DrawLine(dst, x0, y0, x1, y1, c)
	DrawLine(dst, x1, y1, x2, y2, c)
	DrawLine(dst, x2, y2, x0, y0, c)
}

// FillTriangle fills a triangle by splitting it into flat-bottom and
// flat-top halves and drawing scanlines.
func FillTriangle(dst Surface, x0, y0, x1, y1, x2, y2 int, c Color) {
	// Sort by y so y0 <= y1 <= y2.
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 {
		// Degenerate: all on one scanline.
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		DrawFastHLine(dst, a, y0, b-a+1, c)
		return
	}

	dx01 := x1 - x0
	dy01 := y1 - y0
	dx02 := x2 - x0
	dy02 := y2 - y0
	dx12 := x2 - x1
	dy12 := y2 - y1
	sa := 0
	sb := 0

	// Upper half, edges 0-1 and 0-2. If y1 == y2 the scanline at y1 is
	// included here; otherwise it belongs to the lower half.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		DrawFastHLine(dst, a, y, b-a+1, c)
	}

	// Lower half, edges 1-2 and 0-2.
	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		DrawFastHLine(dst, a, y, b-a+1, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
