package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	"github.com/golang/freetype/truetype"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
)

// Fonts holds the four TrueType faces used for label emphasis levels.
// Only Regular is required; missing faces fall back to it.
type Fonts struct {
	Regular    *truetype.Font
	Italic     *truetype.Font
	Bold       *truetype.Font
	BoldItalic *truetype.Font
}

// LoadFonts loads TrueType font files for each emphasis style. The regular
// path is required; the others may be empty, in which case the regular face
// stands in for them.
func LoadFonts(regular, italic, bold, boldItalic string) (*Fonts, error) {
	if regular == "" {
		return nil, fmt.Errorf("sdfx: a regular font file is required")
	}
	f := &Fonts{}
	var err error
	f.Regular, err = sdf.LoadFont(regular)
	if err != nil {
		return nil, fmt.Errorf("sdfx: loading regular font %s: %w", regular, err)
	}
	load := func(path string, dst **truetype.Font) error {
		if path == "" {
			return nil
		}
		face, err := sdf.LoadFont(path)
		if err != nil {
			return fmt.Errorf("sdfx: loading font %s: %w", path, err)
		}
		*dst = face
		return nil
	}
	if err = load(italic, &f.Italic); err != nil {
		return nil, err
	}
	if err = load(bold, &f.Bold); err != nil {
		return nil, err
	}
	if err = load(boldItalic, &f.BoldItalic); err != nil {
		return nil, err
	}
	return f, nil
}

// Face returns the font for a style, falling back to the regular face.
func (f *Fonts) Face(style kernel.FontStyle) *truetype.Font {
	switch style {
	case kernel.FontItalic:
		if f.Italic != nil {
			return f.Italic
		}
	case kernel.FontBold:
		if f.Bold != nil {
			return f.Bold
		}
	case kernel.FontBoldItalic:
		if f.BoldItalic != nil {
			return f.BoldItalic
		}
	}
	return f.Regular
}
