package glyphatlas

import (
	"github.com/gogpu/atlaspack"
	"github.com/gogpu/atlaspack/text"
)

// GlyphKey identifies a single rendered glyph: a font name, a rune, and
// the size it was rendered at, in pixels per em (passed as ppem to the
// font's bounds and outline queries).
type GlyphKey struct {
	Font string
	Rune rune
	Size float64
}

// Placement is a glyph's allocated cell within a specific atlas, paired
// with the glyph's original font-design bounding box.
//
// AtlasIndex is internal bookkeeping: it records which Atlas in an
// AtlasSet owns Region, so Release can route the Free call to the right
// manager without searching every atlas.
type Placement struct {
	Region     atlaspack.Region
	Bounds     text.Rect
	AtlasIndex int
}
