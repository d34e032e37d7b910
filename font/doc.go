// Package font decodes bitmap fonts and lays out single-line text on a
// gfx.Surface, reproducing the GFXfont pixel behavior bit for bit.
//
// Two font paths exist and are deliberately not unified:
//
// GFXfont path: a Font carries a shared MSB-first bit stream plus per-glyph
// metrics, glyphs are positioned relative to a text baseline, and code
// points absent from the font draw nothing and advance the cursor by zero.
//
// Built-in path: the classic 5x7 column-major font covering printable
// ASCII, positioned from the top-left corner, with a fixed advance of 6
// pixels per code point whether or not the code point is printable. The
// two paths disagree on how unsupported code points move the cursor;
// existing layouts depend on both behaviors, so both are preserved.
//
// Text is iterated byte-by-byte: the formats are single-byte, there is no
// shaping, no kerning and no multi-byte decoding.
package font
