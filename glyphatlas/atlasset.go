package glyphatlas

import (
	"math"
	"sync"

	"github.com/gogpu/atlaspack/cache"
	"github.com/gogpu/atlaspack/text"
)

// DefaultAtlasSize is the side length used for new atlases when a request
// does not require something larger.
const DefaultAtlasSize = 1024

// AtlasSet is a growable pool of atlases shared by a glyph cache. It is
// safe for concurrent use.
type AtlasSet struct {
	mu          sync.Mutex
	atlases     []*Atlas
	defaultSize uint32
	placements  *cache.ShardedCache[GlyphKey, Placement]
	extractor   *text.OutlineExtractor
}

// NewAtlasSet creates an empty set that grows atlases of defaultSize on
// demand. If defaultSize is 0, DefaultAtlasSize is used.
func NewAtlasSet(defaultSize uint32) *AtlasSet {
	if defaultSize == 0 {
		defaultSize = DefaultAtlasSize
	}
	return &AtlasSet{
		defaultSize: defaultSize,
		placements:  cache.NewSharded[GlyphKey, Placement](256, glyphKeyHasher),
		extractor:   text.NewOutlineExtractor(),
	}
}

// glyphKeyHasher hashes a GlyphKey for shard selection.
func glyphKeyHasher(k GlyphKey) uint64 {
	h := cache.StringHasher(k.Font)
	h ^= cache.StringHasher(string(k.Rune)) * 1099511628211
	bits := math.Float64bits(k.Size)
	return h ^ bits
}

// GetOrPlace returns the cached Placement for key if one exists, otherwise
// extracts the glyph's bounds from font, finds room for it in an existing
// atlas or a newly created one, and caches the result.
func (s *AtlasSet) GetOrPlace(key GlyphKey, font *text.FontSource) (Placement, error) {
	if p, ok := s.placements.Get(key); ok {
		return p, nil
	}

	parsed := font.Parsed()
	gid := parsed.GlyphIndex(key.Rune)
	bounds := parsed.GlyphBounds(gid, key.Size)

	w := ceilDim(bounds.Width())
	h := ceilDim(bounds.Height())
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the lock: another goroutine may have placed this
	// glyph while we were extracting bounds.
	if p, ok := s.placements.Get(key); ok {
		return p, nil
	}

	// A failed or contour-less extraction (space, a glyph missing from the
	// font) falls back to Place's opaque-cell placeholder; the cell is
	// still reserved and cached either way.
	outline, _ := s.extractor.ExtractOutline(parsed, gid, key.Size)

	for i, a := range s.atlases {
		if r, ok := a.Place(w, h, outline); ok {
			p := Placement{Region: r, Bounds: bounds, AtlasIndex: i}
			s.placements.Set(key, p)
			return p, nil
		}
	}

	size := s.defaultSize
	if w > size || h > size {
		size = w
		if h > size {
			size = h
		}
	}

	a, err := NewAtlas(size, size)
	if err != nil {
		return Placement{}, err
	}
	r, ok := a.Place(w, h, outline)
	if !ok {
		return Placement{}, ErrGlyphTooLarge
	}

	s.atlases = append(s.atlases, a)
	p := Placement{Region: r, Bounds: bounds, AtlasIndex: len(s.atlases) - 1}
	s.placements.Set(key, p)
	return p, nil
}

// Release frees a previously placed glyph's cell and drops it from the
// cache.
func (s *AtlasSet) Release(key GlyphKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.placements.Get(key)
	if !ok {
		return ErrUnknownGlyph
	}
	if p.AtlasIndex < 0 || p.AtlasIndex >= len(s.atlases) {
		return ErrUnknownGlyph
	}

	s.atlases[p.AtlasIndex].Free(p.Region)
	s.placements.Delete(key)
	return nil
}

// AtlasCount returns the number of atlases currently in the set.
func (s *AtlasSet) AtlasCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.atlases)
}

func ceilDim(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(math.Ceil(v))
}
