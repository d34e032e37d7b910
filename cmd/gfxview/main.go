// Command gfxview renders text and XBM images the way an embedded
// monochrome panel would, and writes the result as a PNG preview.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/embedview/gfx"
	"github.com/embedview/gfx/font"
	"github.com/embedview/gfx/font/gfxfont"
	"github.com/embedview/gfx/xbm"
)

func main() {
	var (
		width    = flag.Int("width", 128, "panel width in pixels")
		height   = flag.Int("height", 64, "panel height in pixels")
		fontPath = flag.String("font", "", "GFXfont header file (empty = built-in 5x7 font)")
		text     = flag.String("text", "", "text to draw")
		x        = flag.Int("x", 0, "text x position")
		y        = flag.Int("y", 0, "text y position (baseline for GFXfonts, top-left for built-in)")
		center   = flag.Bool("center", false, "center the text across the panel width")
		xbmPath  = flag.String("xbm", "", "XBM image file to draw at the origin")
		scale    = flag.Int("scale", 4, "integer preview upscale factor")
		invert   = flag.Bool("invert", false, "black-on-white instead of white-on-black")
		verbose  = flag.Bool("v", false, "log parser diagnostics to stderr")
		output   = flag.String("out", "preview.png", "output PNG file")
	)
	flag.Parse()

	if *verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fg, bg := gfx.White, gfx.Black
	if *invert {
		fg, bg = bg, fg
	}

	d := gfx.NewDisplay(*width, *height)
	d.Clear(bg)

	if *xbmPath != "" {
		img, err := xbm.ParseFile(*xbmPath)
		if err != nil {
			log.Fatalf("Failed to load XBM: %v", err)
		}
		img.Draw(d, 0, 0, fg)
	}

	if *text != "" {
		if err := drawText(d, *text, *x, *y, *fontPath, *center, fg); err != nil {
			log.Fatalf("Failed to draw text: %v", err)
		}
	}

	if err := savePreview(d, *output, *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d at %dx)\n", *output, *width, *height, *scale)
}

func drawText(d *gfx.Display, text string, x, y int, fontPath string, center bool, fg gfx.Color) error {
	if fontPath == "" {
		if center {
			x += (d.Width() - font.BuiltinTextWidth(text)) / 2
		}
		font.DrawBuiltinText(d, text, x, y, fg)
		return nil
	}

	f, err := gfxfont.ParseFile(fontPath)
	if err != nil {
		return err
	}
	if center {
		font.DrawTextCentered(d, text, 0, y, d.Width(), f, fg)
	} else {
		font.DrawText(d, text, x, y, f, fg)
	}
	return nil
}

// savePreview upscales the framebuffer by an integer factor with
// nearest-neighbor sampling, keeping the pixels crisp, and writes PNG.
func savePreview(d *gfx.Display, path string, scale int) error {
	if scale < 1 {
		scale = 1
	}

	src := d.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, d.Width()*scale, d.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, dst)
}
