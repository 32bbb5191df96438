package text

// GlyphType records which table a glyph's shape came from. OutlineExtractor
// only ever produces GlyphTypeOutline today; the other values are carried so
// an atlas consumer can distinguish "no outline, rasterize a box" glyphs
// from genuinely empty ones once bitmap/color table support lands.
type GlyphType uint8

const (
	// GlyphTypeOutline is a vector path glyph, extracted from glyf/CFF.
	GlyphTypeOutline GlyphType = iota

	// GlyphTypeBitmap is an embedded bitmap glyph (sbix, CBDT/CBLC).
	GlyphTypeBitmap

	// GlyphTypeCOLR is a layered color glyph (COLRv0/COLRv1).
	GlyphTypeCOLR

	// GlyphTypeSVG is an SVG-table glyph.
	GlyphTypeSVG
)

func (t GlyphType) String() string {
	switch t {
	case GlyphTypeOutline:
		return "Outline"
	case GlyphTypeBitmap:
		return "Bitmap"
	case GlyphTypeCOLR:
		return "COLR"
	case GlyphTypeSVG:
		return "SVG"
	default:
		return unknownStr
	}
}
