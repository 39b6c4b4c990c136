package asset

// Glyph is the terminal stand-in for a sprite
type Glyph struct {
	Rune  rune
	Color uint8 // ANSI 256 palette index
}

// glyphs maps (atlas, sprite index) to terminal glyphs for the sprites the game uses
var glyphs = map[AtlasID]map[int]Glyph{
	AtlasBase: {
		1:  {'.', 240},
		24: {'@', 226},
		26: {'&', 45},
	},
	AtlasAlpha: {
		0:  {'*', 201},
		33: {'^', 250},
	},
}

// fallback is drawn for sprites without a dedicated glyph
var fallback = Glyph{'?', 196}

// GlyphFor returns the glyph used to present a sprite in the terminal
func GlyphFor(id AtlasID, index int) Glyph {
	if m, ok := glyphs[id]; ok {
		if g, ok := m[index]; ok {
			return g
		}
	}
	return fallback
}
