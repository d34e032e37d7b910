// Package gfxfont extracts GFXfont tables from Adafruit-style C header
// files, the build-time counterpart of the font package. A header holds
// three declarations: a byte array with the packed glyph bitmaps, a
// GFXglyph array with per-glyph metrics, and a GFXfont struct tying them
// together with the code range and line height.
package gfxfont

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/embedview/gfx/font"
)

var (
	// ErrNoFont is returned when the input has no GFXfont declaration.
	ErrNoFont = errors.New("gfxfont: no GFXfont declaration found")
)

var (
	headerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Preproc", Pattern: `#[^\n]*`},
		{Name: "Hex", Pattern: `0[xX][0-9A-Fa-f]+`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{}()\[\],;*&=]`},
	})

	headerParser = participle.MustBuild[headerFile](
		participle.Lexer(headerLexer),
		participle.Elide("Whitespace", "BlockComment", "LineComment", "Preproc"),
	)
)

// headerFile is the AST root: a flat list of top-level declarations.
type headerFile struct {
	Decls []*decl `parser:"@@*"`
}

// decl is one C declaration. The leading identifiers mix storage
// qualifiers, the type and the declared name; the binder sorts them out
// rather than the grammar, which keeps the grammar free of a C type
// system.
type decl struct {
	Idents []string     `parser:"@Ident+"`
	Array  bool         `parser:"( @'[' ( Hex | Int )? ']' )?"`
	Attrs  []string     `parser:"@Ident*"`
	Init   *initializer `parser:"'=' @@ ';'"`
}

// initializer is a braced list: `{ a, b, ... }` with an optional trailing
// comma.
type initializer struct {
	Items []*value `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

// value is one initializer element: a number, a (possibly cast)
// identifier reference, or a nested braced struct.
type value struct {
	Num    *string      `parser:"  @( Hex | Int )"`
	Ref    *ref         `parser:"| @@"`
	Struct *initializer `parser:"| @@"`
}

// ref captures `FooBitmaps`, `&FooBitmaps` or `(uint8_t *)FooBitmaps`.
type ref struct {
	Name string `parser:"( '(' Ident ( '*' )* ')' )? '&'? @Ident"`
}

// Parse extracts the first font declared in a GFXfont header.
func Parse(r io.Reader) (*font.Font, error) {
	f, err := headerParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("gfxfont: parse: %w", err)
	}
	return bind(f)
}

// ParseString extracts the first font declared in GFXfont header source.
func ParseString(src string) (*font.Font, error) {
	f, err := headerParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("gfxfont: parse: %w", err)
	}
	return bind(f)
}

// ParseFile extracts the first font declared in a header file on disk.
func ParseFile(path string) (*font.Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f)
}

func parseNum(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	return int(n), err
}
