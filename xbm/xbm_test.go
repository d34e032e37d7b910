package xbm

import (
	"testing"

	"github.com/embedview/gfx"
)

func TestDrawLSBFirst(t *testing.T) {
	// 0x01 is the leftmost pixel of the row: bit order is LSB-first,
	// opposite to GFXfont glyph streams.
	d := gfx.NewDisplay(16, 16)
	Draw(d, 4, 4, []byte{0x01}, 8, 1, gfx.White)

	if d.GetPixel(4, 4) != gfx.White {
		t.Error("pixel at column 0 not set; bit order should be LSB-first")
	}
	if d.GetPixel(11, 4) != gfx.Black {
		t.Error("pixel at column 7 set; bit order looks MSB-first")
	}

	n := 0
	for _, p := range d.Pix() {
		if p == gfx.White {
			n++
		}
	}
	if n != 1 {
		t.Errorf("drew %d pixels, want 1", n)
	}
}

func TestDrawRowStride(t *testing.T) {
	// A 9-pixel-wide image has a 2-byte stride; column 8 lives in bit 0 of
	// the row's second byte.
	d := gfx.NewDisplay(16, 16)
	bits := []byte{
		0x00, 0x01, // row 0: only column 8
		0xFF, 0x00, // row 1: columns 0-7
	}
	Draw(d, 0, 0, bits, 9, 2, gfx.White)

	if d.GetPixel(8, 0) != gfx.White {
		t.Error("column 8 of row 0 not set")
	}
	for col := 0; col < 8; col++ {
		if d.GetPixel(col, 0) != gfx.Black {
			t.Errorf("row 0 column %d set", col)
		}
		if d.GetPixel(col, 1) != gfx.White {
			t.Errorf("row 1 column %d not set", col)
		}
	}
	if d.GetPixel(8, 1) != gfx.Black {
		t.Error("row 1 column 8 set")
	}
}

func TestDrawClearBitsTransparent(t *testing.T) {
	// Unset bits leave the surface untouched instead of painting
	// background.
	d := gfx.NewDisplay(16, 16)
	d.Clear(gfx.Red)
	Draw(d, 0, 0, []byte{0x0F}, 8, 1, gfx.White)

	for col := 0; col < 4; col++ {
		if d.GetPixel(col, 0) != gfx.White {
			t.Errorf("column %d not drawn", col)
		}
	}
	for col := 4; col < 8; col++ {
		if d.GetPixel(col, 0) != gfx.Red {
			t.Errorf("column %d overwritten by a clear bit", col)
		}
	}
}

func TestDrawShortBits(t *testing.T) {
	// Missing trailing bytes read as zero: the prefix draws, the rest is
	// silently blank.
	d := gfx.NewDisplay(16, 16)
	Draw(d, 0, 0, []byte{0xFF}, 8, 3, gfx.White)

	for col := 0; col < 8; col++ {
		if d.GetPixel(col, 0) != gfx.White {
			t.Errorf("row 0 column %d not set", col)
		}
		if d.GetPixel(col, 1) != gfx.Black || d.GetPixel(col, 2) != gfx.Black {
			t.Errorf("column %d drawn past the supplied bytes", col)
		}
	}
}

func TestDrawScaledIdentity(t *testing.T) {
	// At 1:1 scale the output matches Draw pixel for pixel.
	bits := []byte{0xA5, 0x01, 0x3C, 0x80}
	const w, h = 14, 2

	d1 := gfx.NewDisplay(20, 10)
	d2 := gfx.NewDisplay(20, 10)
	Draw(d1, 3, 2, bits, w, h, gfx.White)
	DrawScaled(d2, 3, 2, bits, w, h, w, h, gfx.White)

	for i := range d1.Pix() {
		if d1.Pix()[i] != d2.Pix()[i] {
			t.Fatalf("pixel %d differs between Draw and 1:1 DrawScaled", i)
		}
	}
}

func TestDrawScaledUp(t *testing.T) {
	// 2x1 source with only the left pixel set, scaled to 4x2: the left
	// 2x2 block is drawn, the right stays clear.
	d := gfx.NewDisplay(16, 16)
	DrawScaled(d, 0, 0, []byte{0x01}, 2, 1, 4, 2, gfx.White)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if d.GetPixel(x, y) != gfx.White {
				t.Errorf("pixel (%d, %d) not set", x, y)
			}
		}
		for x := 2; x < 4; x++ {
			if d.GetPixel(x, y) != gfx.Black {
				t.Errorf("pixel (%d, %d) set", x, y)
			}
		}
	}
}

func TestDrawScaledDown(t *testing.T) {
	// 4x4 checker scaled to 2x2 picks source pixels (0,0), (2,0), (0,2),
	// (2,2) by floor sampling.
	bits := []byte{
		0x05, // row 0: columns 0, 2
		0x00,
		0x05, // row 2: columns 0, 2
		0x00,
	}
	d := gfx.NewDisplay(8, 8)
	DrawScaled(d, 0, 0, bits, 4, 4, 2, 2, gfx.White)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if d.GetPixel(x, y) != gfx.White {
				t.Errorf("pixel (%d, %d) not set", x, y)
			}
		}
	}
	if d.GetPixel(2, 0) != gfx.Black || d.GetPixel(0, 2) != gfx.Black {
		t.Error("scaled image drew outside its destination size")
	}
}

func TestDrawScaledDegenerate(t *testing.T) {
	d := gfx.NewDisplay(8, 8)
	// Zero and negative destination dimensions draw nothing and must not
	// divide by zero.
	DrawScaled(d, 0, 0, []byte{0xFF}, 8, 1, 0, 5, gfx.White)
	DrawScaled(d, 0, 0, []byte{0xFF}, 8, 1, 5, 0, gfx.White)
	DrawScaled(d, 0, 0, []byte{0xFF}, 8, 1, -2, -2, gfx.White)

	for i, p := range d.Pix() {
		if p != gfx.Black {
			t.Fatalf("degenerate scale drew pixel %d", i)
		}
	}
}
