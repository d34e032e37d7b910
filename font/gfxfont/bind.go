package gfxfont

import (
	"fmt"

	"github.com/embedview/gfx"
	"github.com/embedview/gfx/font"
)

// qualifiers are leading identifiers that carry no binding information.
var qualifiers = map[string]bool{
	"const":    true,
	"static":   true,
	"unsigned": true,
	"signed":   true,
	"PROGMEM":  true,
}

// typeAndName strips qualifiers from a declaration's leading identifiers
// and returns the C type and the declared name (the last identifier).
func (d *decl) typeAndName() (typ, name string) {
	var parts []string
	for _, id := range d.Idents {
		if !qualifiers[id] {
			parts = append(parts, id)
		}
	}
	if len(parts) < 2 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

// bind walks the parsed declarations and assembles the first declared
// GFXfont into a font.Font.
func bind(f *headerFile) (*font.Font, error) {
	byteArrays := make(map[string][]byte)
	glyphArrays := make(map[string][]font.Glyph)
	var fontDecl *decl
	var fontName string

	for _, d := range f.Decls {
		typ, name := d.typeAndName()
		if name == "" || d.Init == nil {
			continue
		}
		switch typ {
		case "uint8_t", "char", "uint8":
			b, err := bindBytes(name, d.Init)
			if err != nil {
				return nil, err
			}
			byteArrays[name] = b
		case "GFXglyph":
			gs, err := bindGlyphs(name, d.Init)
			if err != nil {
				return nil, err
			}
			glyphArrays[name] = gs
		case "GFXfont":
			if fontDecl == nil {
				fontDecl = d
				fontName = name
			}
		}
	}

	if fontDecl == nil {
		return nil, ErrNoFont
	}

	gfx.Logger().Debug("gfxfont: parsed header",
		"font", fontName,
		"byteArrays", len(byteArrays),
		"glyphArrays", len(glyphArrays))

	return bindFont(fontName, fontDecl.Init, byteArrays, glyphArrays)
}

func bindBytes(name string, init *initializer) ([]byte, error) {
	out := make([]byte, 0, len(init.Items))
	for i, it := range init.Items {
		if it.Num == nil {
			return nil, fmt.Errorf("gfxfont: %s[%d]: expected a byte", name, i)
		}
		n, err := parseNum(*it.Num)
		if err != nil || n < 0 || n > 0xFF {
			return nil, fmt.Errorf("gfxfont: %s[%d]: bad byte %q", name, i, *it.Num)
		}
		out = append(out, byte(n))
	}
	return out, nil
}

func bindGlyphs(name string, init *initializer) ([]font.Glyph, error) {
	out := make([]font.Glyph, 0, len(init.Items))
	for i, it := range init.Items {
		if it.Struct == nil || len(it.Struct.Items) != 6 {
			return nil, fmt.Errorf("gfxfont: %s[%d]: expected {offset, w, h, xAdv, xOff, yOff}", name, i)
		}
		var n [6]int
		for j, field := range it.Struct.Items {
			if field.Num == nil {
				return nil, fmt.Errorf("gfxfont: %s[%d]: field %d is not a number", name, i, j)
			}
			v, err := parseNum(*field.Num)
			if err != nil {
				return nil, fmt.Errorf("gfxfont: %s[%d]: field %d: %w", name, i, j, err)
			}
			n[j] = v
		}
		out = append(out, font.Glyph{
			Offset:   n[0],
			Width:    n[1],
			Height:   n[2],
			XAdvance: n[3],
			XOffset:  n[4],
			YOffset:  n[5],
		})
	}
	return out, nil
}

func bindFont(name string, init *initializer, byteArrays map[string][]byte, glyphArrays map[string][]font.Glyph) (*font.Font, error) {
	if len(init.Items) != 5 {
		return nil, fmt.Errorf("gfxfont: %s: expected {bitmaps, glyphs, first, last, yAdvance}", name)
	}
	bitmapRef, glyphRef := init.Items[0].Ref, init.Items[1].Ref
	if bitmapRef == nil || glyphRef == nil {
		return nil, fmt.Errorf("gfxfont: %s: bitmap and glyph fields must reference arrays", name)
	}

	bitmap, ok := byteArrays[bitmapRef.Name]
	if !ok {
		return nil, fmt.Errorf("gfxfont: %s: undefined bitmap array %q", name, bitmapRef.Name)
	}
	glyphs, ok := glyphArrays[glyphRef.Name]
	if !ok {
		return nil, fmt.Errorf("gfxfont: %s: undefined glyph array %q", name, glyphRef.Name)
	}

	var bounds [3]int
	for i, it := range init.Items[2:] {
		if it.Num == nil {
			return nil, fmt.Errorf("gfxfont: %s: field %d is not a number", name, i+2)
		}
		v, err := parseNum(*it.Num)
		if err != nil {
			return nil, fmt.Errorf("gfxfont: %s: field %d: %w", name, i+2, err)
		}
		bounds[i] = v
	}
	first, last, yAdvance := bounds[0], bounds[1], bounds[2]
	if first < 0 || first > 0xFF || last < 0 || last > 0xFF || last < first {
		return nil, fmt.Errorf("gfxfont: %s: bad code range [%#x, %#x]", name, first, last)
	}
	if want := last - first + 1; len(glyphs) != want {
		return nil, fmt.Errorf("gfxfont: %s: %d glyphs for code range of %d", name, len(glyphs), want)
	}

	out := &font.Font{
		Bitmap:   bitmap,
		Glyphs:   make(map[byte]font.Glyph, len(glyphs)),
		First:    byte(first),
		Last:     byte(last),
		YAdvance: yAdvance,
	}
	for i, g := range glyphs {
		// Glyph data defects are tolerated by the renderer (reads clamp to
		// the bitmap), so they only warrant a warning here.
		if end := g.Offset + (g.Width*g.Height+7)/8; end > len(bitmap) {
			gfx.Logger().Warn("gfxfont: glyph bitmap out of range",
				"font", name, "code", first+i, "offset", g.Offset, "end", end, "bitmap", len(bitmap))
		}
		out.Glyphs[byte(first+i)] = g
	}
	return out, nil
}
