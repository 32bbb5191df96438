package glyphatlas

import "errors"

// ErrGlyphTooLarge is returned by GetOrPlace when a glyph's cell cannot be
// placed even in the freshly created atlas sized to hold it. A cell larger
// than the default atlas size does not cause it: the new atlas is grown to
// the cell's larger side instead.
var ErrGlyphTooLarge = errors.New("glyphatlas: glyph cell exceeds maximum atlas size")

// ErrUnknownGlyph is returned by Release when the given key has no
// recorded placement.
var ErrUnknownGlyph = errors.New("glyphatlas: release of a glyph with no recorded placement")
