package gfx

// Surface is a mutable rectangular grid of pixels. It is the only contract
// the text, shape and image code draws against; implementations own all
// clipping. Writes outside the surface must be ignored, never an error.
//
// Nothing in this module ever reads a surface back; a write-only
// implementation (a live panel, a stream encoder) satisfies the drawing
// code just as well as the in-memory Display.
type Surface interface {
	// SetPixel writes a single pixel. Out-of-range coordinates are dropped.
	SetPixel(x, y int, c Color)

	// FillRect fills a w x h rectangle whose top-left corner is (x, y),
	// clipped to the surface.
	FillRect(x, y, w, h int, c Color)

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int
}
