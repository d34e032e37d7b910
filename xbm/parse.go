package xbm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/embedview/gfx"
)

// Image is a packed monochrome image extracted from an XBM source file.
type Image struct {
	Name   string
	Width  int
	Height int
	Bits   []byte
}

// ErrNoImage is returned when the input contains no bits array.
var ErrNoImage = errors.New("xbm: no bits array found")

var (
	xbmLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Define", Pattern: `#\s*define`},
		{Name: "Hex", Pattern: `0[xX][0-9A-Fa-f]+`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{}\[\],;=]`},
	})

	xbmParser = participle.MustBuild[xbmFile](
		participle.Lexer(xbmLexer),
		participle.Elide("Whitespace", "BlockComment", "LineComment"),
	)
)

// xbmFile is the AST for an XBM source file: dimension defines followed by
// the bits array declaration.
type xbmFile struct {
	Defines []*xbmDefine `parser:"@@*"`
	Array   *xbmArray    `parser:"@@?"`
}

// xbmDefine captures `#define name value`.
type xbmDefine struct {
	Name  string `parser:"Define @Ident"`
	Value string `parser:"@(Hex | Int)"`
}

// xbmArray captures the bits declaration. The leading identifiers are C
// storage/type keywords plus the array name, which comes last.
type xbmArray struct {
	Idents []string `parser:"@Ident+"`
	Dim    string   `parser:"'[' @(Hex | Int)? ']'"`
	Values []string `parser:"'=' '{' ( @(Hex | Int) ( ',' @(Hex | Int) )* ','? )? '}' ';'"`
}

// Parse extracts an image from XBM C source.
func Parse(r io.Reader) (*Image, error) {
	f, err := xbmParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("xbm: parse: %w", err)
	}
	return bind(f)
}

// ParseString extracts an image from XBM C source held in a string.
func ParseString(src string) (*Image, error) {
	f, err := xbmParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("xbm: parse: %w", err)
	}
	return bind(f)
}

// ParseFile extracts an image from an XBM file on disk.
func ParseFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f)
}

func bind(f *xbmFile) (*Image, error) {
	if f.Array == nil || len(f.Array.Idents) == 0 {
		return nil, ErrNoImage
	}

	img := &Image{Name: strings.TrimSuffix(f.Array.Idents[len(f.Array.Idents)-1], "_bits")}

	width, height := -1, -1
	for _, d := range f.Defines {
		n, err := strconv.ParseInt(d.Value, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("xbm: define %s: %w", d.Name, err)
		}
		switch {
		case strings.HasSuffix(d.Name, "_width"):
			width = int(n)
		case strings.HasSuffix(d.Name, "_height"):
			height = int(n)
		}
		// x_hot / y_hot defines are accepted and ignored.
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("xbm: %s: missing width/height defines", img.Name)
	}
	img.Width = width
	img.Height = height

	img.Bits = make([]byte, 0, len(f.Array.Values))
	for _, v := range f.Array.Values {
		n, err := strconv.ParseInt(v, 0, 16)
		if err != nil || n < 0 || n > 0xFF {
			return nil, fmt.Errorf("xbm: %s: bad byte %q", img.Name, v)
		}
		img.Bits = append(img.Bits, byte(n))
	}

	if want := ((width + 7) / 8) * height; len(img.Bits) < want {
		// The decoder treats missing bytes as zero, so this is tolerated.
		gfx.Logger().Warn("xbm: short bits array",
			"image", img.Name, "have", len(img.Bits), "want", want)
	}
	return img, nil
}

// Draw blits the image with its top-left corner at (x, y).
func (img *Image) Draw(dst gfx.Surface, x, y int, c gfx.Color) {
	Draw(dst, x, y, img.Bits, img.Width, img.Height, c)
}

// DrawScaled blits the image resized to dw x dh.
func (img *Image) DrawScaled(dst gfx.Surface, x, y, dw, dh int, c gfx.Color) {
	DrawScaled(dst, x, y, img.Bits, img.Width, img.Height, dw, dh, c)
}
