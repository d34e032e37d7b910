package font

// Glyph holds the bitmap location and metrics for one character code.
type Glyph struct {
	// Offset is the byte offset of the glyph's bit stream in Font.Bitmap.
	Offset int

	// Width and Height are the dimensions of the drawn region in pixels.
	// Both may be zero for invisible glyphs such as space.
	Width  int
	Height int

	// XAdvance is the cursor displacement after drawing, independent of
	// Width.
	XAdvance int

	// XOffset and YOffset displace the glyph's top-left pixel from the
	// cursor position. YOffset is typically negative: ascenders sit above
	// the baseline.
	XOffset int
	YOffset int
}

// Font is an immutable bitmap font in the GFXfont layout: one shared bit
// stream plus per-glyph metrics. Values are built once (usually by the
// gfxfont header extractor) and never mutated.
type Font struct {
	// Bitmap is the concatenation of every glyph's pixel data. Each byte
	// holds 8 pixels MSB-first: bit 7 is the leftmost pixel of the byte's
	// run.
	Bitmap []byte

	// Glyphs maps character codes to glyph records. The map is sparse;
	// a code inside [First, Last] may legally be absent, in which case it
	// is non-renderable.
	Glyphs map[byte]Glyph

	// First and Last are the inclusive bounds on supported codes.
	First byte
	Last  byte

	// YAdvance is the vertical distance between successive baselines.
	YAdvance int
}

// GetGlyph returns the glyph record for a character code. The second
// return value reports whether the code is present in the font.
func (f *Font) GetGlyph(code byte) (Glyph, bool) {
	g, ok := f.Glyphs[code]
	return g, ok
}

// HasChar reports whether the font has a glyph for the given code.
func (f *Font) HasChar(code byte) bool {
	_, ok := f.Glyphs[code]
	return ok
}

// Bounds describes the extent of a rendered string relative to the cursor
// start: Width is the total horizontal advance, YMin and YMax bound the
// ink vertically relative to the baseline, and Height is YMax - YMin.
type Bounds struct {
	Width  int
	Height int
	YMin   int
	YMax   int
}
