package chart

import (
	"fmt"
	"hash/fnv"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
)

// registerFont parses a TrueType/OpenType font and registers it on the default
// gonum font cache, the same font data always maps to the same typeface.
func registerFont(data []byte) (font.Font, error) {
	face, err := opentype.Parse(data)
	if err != nil {
		return font.Font{}, fmt.Errorf("could not parse font: %w", err)
	}

	h := fnv.New32a()
	_, _ = h.Write(data)

	fnt := font.Font{
		Typeface: font.Typeface(fmt.Sprintf("sheetgantt-%08x", h.Sum32())),
		Variant:  "Sans",
		Style:    xfont.StyleNormal,
		Weight:   xfont.WeightNormal,
	}
	font.DefaultCache.Add(font.Collection{{Font: fnt, Face: face}})

	return fnt, nil
}

// applyFont sets the font on every plot text keeping the configured sizes.
func applyFont(p *plot.Plot, fnt font.Font) {
	with := func(f *font.Font) {
		size := f.Size
		*f = fnt
		f.Size = size
	}

	with(&p.Title.TextStyle.Font)
	with(&p.X.Label.TextStyle.Font)
	with(&p.Y.Label.TextStyle.Font)
	with(&p.X.Tick.Label.Font)
	with(&p.Y.Tick.Label.Font)
}
