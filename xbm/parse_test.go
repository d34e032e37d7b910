package xbm

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/embedview/gfx"
)

const arrowXBM = `
/* classic X11 bitmap */
#define arrow_width 9
#define arrow_height 2
#define arrow_x_hot 4
#define arrow_y_hot 0
static unsigned char arrow_bits[] = {
   0x10, 0x00, // tip
   0xff, 0x01,
};
`

func TestParseXBM(t *testing.T) {
	img, err := ParseString(arrowXBM)
	if err != nil {
		t.Fatalf("ParseString() = %v", err)
	}

	want := &Image{
		Name:   "arrow",
		Width:  9,
		Height: 2,
		Bits:   []byte{0x10, 0x00, 0xFF, 0x01},
	}
	if diff := cmp.Diff(want, img); diff != "" {
		t.Errorf("parsed image mismatch (-want +got):\n%s", diff)
	}
}

func TestParseXBMReader(t *testing.T) {
	img, err := Parse(strings.NewReader(arrowXBM))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if img.Name != "arrow" || img.Width != 9 {
		t.Errorf("Parse() = %+v", img)
	}
}

func TestParsedImageDraw(t *testing.T) {
	img, err := ParseString(arrowXBM)
	if err != nil {
		t.Fatalf("ParseString() = %v", err)
	}

	d := gfx.NewDisplay(16, 16)
	img.Draw(d, 0, 0, gfx.White)

	// Row 0 byte 0x10: only column 4. Row 1 bytes 0xFF, 0x01: columns 0-8.
	if d.GetPixel(4, 0) != gfx.White || d.GetPixel(0, 0) != gfx.Black {
		t.Error("row 0 decoded wrong")
	}
	for col := 0; col <= 8; col++ {
		if d.GetPixel(col, 1) != gfx.White {
			t.Errorf("row 1 column %d not set", col)
		}
	}
}

func TestParseXBMMissingDimensions(t *testing.T) {
	src := `
#define thing_width 8
static unsigned char thing_bits[] = { 0xff };
`
	if _, err := ParseString(src); err == nil {
		t.Error("expected an error for a missing height define")
	}
}

func TestParseXBMNoArray(t *testing.T) {
	src := `
#define thing_width 8
#define thing_height 1
`
	_, err := ParseString(src)
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("ParseString() = %v, want ErrNoImage", err)
	}
}

func TestParseXBMBadByte(t *testing.T) {
	src := `
#define thing_width 8
#define thing_height 1
static unsigned char thing_bits[] = { 0x1ff };
`
	if _, err := ParseString(src); err == nil {
		t.Error("expected an error for a byte out of range")
	}
}

func TestParseXBMShortBitsWarnsOnly(t *testing.T) {
	src := `
#define thing_width 16
#define thing_height 4
static unsigned char thing_bits[] = { 0xff, 0x00 };
`
	img, err := ParseString(src)
	if err != nil {
		t.Fatalf("short bits should parse with a warning, got %v", err)
	}
	if len(img.Bits) != 2 {
		t.Errorf("Bits length = %d, want 2", len(img.Bits))
	}
}

func TestParseXBMErrorWrapsNothingSpurious(t *testing.T) {
	if _, err := ParseString("garbage ("); err == nil {
		t.Error("expected a parse error")
	} else if errors.Is(err, ErrNoImage) {
		t.Error("syntax failure should not report ErrNoImage")
	}
}
