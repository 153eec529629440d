package forestfire

import "image/color"

var forestPalette = []color.RGBA{
	Empty:   {R: 70, G: 52, B: 32, A: 255},
	Tree:    {R: 40, G: 140, B: 55, A: 255},
	Burning: {R: 255, G: 130, B: 40, A: 255},
}

var forestGlyphs = []rune{
	Empty:   glyphEmpty,
	Tree:    glyphTree,
	Burning: glyphBurning,
}

// Palette exposes the colours used for each cell value returned by Cells.
func (s *Sim) Palette() []color.RGBA { return forestPalette }

// Glyphs exposes the text glyph used for each cell value returned by Cells.
func (s *Sim) Glyphs() []rune { return forestGlyphs }
