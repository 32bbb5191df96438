// Package glyphatlas places rendered glyphs into one or more texture
// atlases backed by atlaspack.AtlasManager.
//
// A GlyphKey identifies a glyph by font, rune, and size. AtlasSet keeps a
// pool of Atlas instances and a cache.ShardedCache mapping GlyphKey to its
// Placement, so repeated lookups for the same glyph reuse the existing
// cell instead of allocating again. When every existing atlas is too full
// for a request, AtlasSet grows by creating a new Atlas sized to fit it.
package glyphatlas
