package gfxfont

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/embedview/gfx"
	"github.com/embedview/gfx/font"
)

// tinyHeader declares a two-glyph font in the usual generated-header
// shape: comments, PROGMEM attributes and pointer casts included.
const tinyHeader = `
/* Generated by fontconvert, do not edit. */
#pragma once

const uint8_t Tiny5pt7bBitmaps[] PROGMEM = {
  0x80, 0xFC, 0xF0, // packed rows
};

const GFXglyph Tiny5pt7bGlyphs[] PROGMEM = {
  { 0, 8, 1, 9, 0, -1 }, // 0x41 'A'
  { 1, 2, 3, 3, 0, -1 }, // 0x42 'B'
};

const GFXfont Tiny5pt7b PROGMEM = {
  (uint8_t *)Tiny5pt7bBitmaps,
  (GFXglyph *)Tiny5pt7bGlyphs,
  0x41, 0x42, 10 };
`

func TestParseHeader(t *testing.T) {
	f, err := ParseString(tinyHeader)
	if err != nil {
		t.Fatalf("ParseString() = %v", err)
	}

	want := &font.Font{
		Bitmap: []byte{0x80, 0xFC, 0xF0},
		Glyphs: map[byte]font.Glyph{
			'A': {Offset: 0, Width: 8, Height: 1, XAdvance: 9, XOffset: 0, YOffset: -1},
			'B': {Offset: 1, Width: 2, Height: 3, XAdvance: 3, XOffset: 0, YOffset: -1},
		},
		First:    'A',
		Last:     'B',
		YAdvance: 10,
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("parsed font mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeaderReader(t *testing.T) {
	f, err := Parse(strings.NewReader(tinyHeader))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if !f.HasChar('A') || f.YAdvance != 10 {
		t.Errorf("Parse() = %+v", f)
	}
}

func TestParsedFontRenders(t *testing.T) {
	// End to end: the 'A' glyph from the header draws a single MSB pixel.
	f, err := ParseString(tinyHeader)
	if err != nil {
		t.Fatalf("ParseString() = %v", err)
	}

	d := gfx.NewDisplay(32, 32)
	if adv := font.DrawGlyph(d, 10, 10, 'A', f, gfx.White); adv != 9 {
		t.Errorf("advance = %d, want 9", adv)
	}
	if d.GetPixel(10, 9) != gfx.White {
		t.Error("glyph pixel not where the header metrics place it")
	}
}

func TestParseNoFont(t *testing.T) {
	src := `const uint8_t OnlyBitmaps[] PROGMEM = { 0x01 };`
	_, err := ParseString(src)
	if !errors.Is(err, ErrNoFont) {
		t.Errorf("ParseString() = %v, want ErrNoFont", err)
	}
}

func TestParseUndefinedBitmapArray(t *testing.T) {
	src := `
const GFXglyph FooGlyphs[] PROGMEM = { { 0, 1, 1, 2, 0, 0 } };
const GFXfont Foo PROGMEM = { (uint8_t *)Missing, (GFXglyph *)FooGlyphs, 0x20, 0x20, 8 };
`
	if _, err := ParseString(src); err == nil {
		t.Error("expected an error for an undefined bitmap identifier")
	}
}

func TestParseGlyphCountMismatch(t *testing.T) {
	src := `
const uint8_t FooBitmaps[] PROGMEM = { 0x01 };
const GFXglyph FooGlyphs[] PROGMEM = { { 0, 1, 1, 2, 0, 0 } };
const GFXfont Foo PROGMEM = { (uint8_t *)FooBitmaps, (GFXglyph *)FooGlyphs, 0x20, 0x7E, 8 };
`
	if _, err := ParseString(src); err == nil {
		t.Error("expected an error for a glyph count not matching the code range")
	}
}

func TestParseBadCodeRange(t *testing.T) {
	src := `
const uint8_t FooBitmaps[] PROGMEM = { 0x01 };
const GFXglyph FooGlyphs[] PROGMEM = { { 0, 1, 1, 2, 0, 0 } };
const GFXfont Foo PROGMEM = { (uint8_t *)FooBitmaps, (GFXglyph *)FooGlyphs, 0x7E, 0x20, 8 };
`
	if _, err := ParseString(src); err == nil {
		t.Error("expected an error for last < first")
	}
}

func TestParseOffsetPastBitmapTolerated(t *testing.T) {
	// A glyph pointing past the bitmap parses fine (the renderer clamps);
	// it only produces a warning on the configured logger.
	src := `
const uint8_t FooBitmaps[] PROGMEM = { 0x01 };
const GFXglyph FooGlyphs[] PROGMEM = { { 500, 8, 8, 9, 0, -7 } };
const GFXfont Foo PROGMEM = { (uint8_t *)FooBitmaps, (GFXglyph *)FooGlyphs, 0x20, 0x20, 8 };
`
	f, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() = %v", err)
	}
	if !f.HasChar(0x20) {
		t.Error("glyph with a bad offset should still be present")
	}

	// And rendering it stays within bounds.
	d := gfx.NewDisplay(16, 16)
	font.DrawGlyph(d, 4, 10, 0x20, f, gfx.White)
}

func TestParseWithoutCasts(t *testing.T) {
	// Some headers skip the casts and use plain references.
	src := `
const uint8_t FooBitmaps[] = { 0xAA };
const GFXglyph FooGlyphs[] = { { 0, 4, 2, 5, 1, -2 } };
const GFXfont Foo = { FooBitmaps, FooGlyphs, 0x30, 0x30, 6 };
`
	f, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() = %v", err)
	}
	g, ok := f.GetGlyph(0x30)
	if !ok {
		t.Fatal("glyph 0x30 missing")
	}
	if g.XOffset != 1 || g.YOffset != -2 {
		t.Errorf("glyph = %+v", g)
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := ParseString("const uint8_t Foo[] = { 0x01, };;;{"); err == nil {
		t.Error("expected a syntax error")
	}
}
