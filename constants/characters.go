package constants

// Default glyphs, one terminal cell each
const (
	GlyphWall       = '#'
	GlyphHead       = 'X'
	GlyphHorizontal = '-'
	GlyphVertical   = '|'
	GlyphFood       = 'O'
	GlyphEmpty      = ' '
)
