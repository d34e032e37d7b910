package gfx

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Display is an in-memory Surface backed by an RGB565 framebuffer, the
// software stand-in for a real panel. It implements image.Image so it can
// be handed to the standard library image tooling directly.
type Display struct {
	width  int
	height int
	pix    []Color // row-major, one Color per pixel
}

// NewDisplay creates a display with the given dimensions, cleared to Black.
func NewDisplay(width, height int) *Display {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Display{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the display width in pixels.
func (d *Display) Width() int { return d.width }

// Height returns the display height in pixels.
func (d *Display) Height() int { return d.height }

// Pix returns the raw framebuffer, row-major.
func (d *Display) Pix() []Color { return d.pix }

// SetPixel writes a single pixel. Out-of-range coordinates are silently
// ignored, which is what lets the decoders skip clipping entirely.
func (d *Display) SetPixel(x, y int, c Color) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.pix[y*d.width+x] = c
}

// GetPixel returns the pixel at (x, y), or Black if out of range.
func (d *Display) GetPixel(x, y int) Color {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return Black
	}
	return d.pix[y*d.width+x]
}

// FillRect fills a w x h rectangle at (x, y), clipped to the display.
func (d *Display) FillRect(x, y, w, h int, c Color) {
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > d.width {
		x1 = d.width
	}
	if y1 > d.height {
		y1 = d.height
	}
	for yy := y0; yy < y1; yy++ {
		row := yy * d.width
		for xx := x0; xx < x1; xx++ {
			d.pix[row+xx] = c
		}
	}
}

// Clear fills the entire display with a color.
func (d *Display) Clear(c Color) {
	for i := range d.pix {
		d.pix[i] = c
	}
}

// ToImage converts the display to an image.RGBA.
func (d *Display) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			r, g, b, a := d.pix[y*d.width+x].RGBA()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}
	return img
}

// EncodePNG writes the display contents as PNG.
func (d *Display) EncodePNG(w io.Writer) error {
	return png.Encode(w, d.ToImage())
}

// SavePNG saves the display contents to a PNG file.
func (d *Display) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return d.EncodePNG(f)
}

// At implements the image.Image interface.
func (d *Display) At(x, y int) color.Color {
	return d.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// ColorModel implements the image.Image interface.
func (d *Display) ColorModel() color.Model {
	return color.RGBAModel
}
