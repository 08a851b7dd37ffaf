package render

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Glyphs is the character used for each drawn element
type Glyphs struct {
	Wall       rune
	Head       rune
	Horizontal rune
	Vertical   rune
	Food       rune
	Empty      rune
}

// DefaultGlyphs returns the built-in glyph set
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Wall:       constants.GlyphWall,
		Head:       constants.GlyphHead,
		Horizontal: constants.GlyphHorizontal,
		Vertical:   constants.GlyphVertical,
		Food:       constants.GlyphFood,
		Empty:      constants.GlyphEmpty,
	}
}

// Segment returns the body glyph for the orientation
func (g Glyphs) Segment(o core.Orientation) rune {
	if o == core.Vertical {
		return g.Vertical
	}
	return g.Horizontal
}
