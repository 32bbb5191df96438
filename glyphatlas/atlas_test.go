package glyphatlas

import "testing"

func TestAtlasPlaceAndFree(t *testing.T) {
	a, err := NewAtlas(64, 64)
	if err != nil {
		t.Fatal(err)
	}

	r, ok := a.Place(10, 10, nil)
	if !ok {
		t.Fatal("expected Place to succeed")
	}
	if r.Width != 10 || r.Height != 10 {
		t.Errorf("got region %+v, want 10x10", r)
	}

	a.Free(r)

	r2, ok := a.Place(64, 64, nil)
	if !ok || r2.Width != 64 || r2.Height != 64 {
		t.Errorf("expected whole atlas reusable after free, got %+v ok=%v", r2, ok)
	}
}

func TestAtlasPlaceFailsWhenFull(t *testing.T) {
	a, err := NewAtlas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.Place(8, 8, nil); !ok {
		t.Fatal("expected first placement to succeed")
	}
	if _, ok := a.Place(1, 1, nil); ok {
		t.Error("expected second placement to fail: atlas is full")
	}
}

func TestAtlasSetCachedPlacementAndRelease(t *testing.T) {
	s := NewAtlasSet(16)

	// Without a real font GetOrPlace cannot run, so add an atlas to the
	// set by hand, place into it, and record the placement in the cache.
	a, err := NewAtlas(s.defaultSize, s.defaultSize)
	if err != nil {
		t.Fatal(err)
	}
	s.atlases = append(s.atlases, a)

	if s.AtlasCount() != 1 {
		t.Fatalf("AtlasCount() = %d, want 1", s.AtlasCount())
	}

	key := GlyphKey{Font: "test", Rune: 'A', Size: 12}
	r, ok := s.atlases[0].Place(4, 4, nil)
	if !ok {
		t.Fatal("expected placement to succeed in a fresh 16x16 atlas")
	}
	s.placements.Set(key, Placement{Region: r, AtlasIndex: 0})

	got, ok := s.placements.Get(key)
	if !ok || got.Region != r {
		t.Errorf("expected cached placement to round-trip, got %+v ok=%v", got, ok)
	}

	if err := s.Release(key); err != nil {
		t.Errorf("Release() = %v", err)
	}
	if _, ok := s.placements.Get(key); ok {
		t.Error("expected placement to be dropped after Release")
	}
}

func TestAtlasSetReleaseUnknownGlyph(t *testing.T) {
	s := NewAtlasSet(0)
	if err := s.Release(GlyphKey{Font: "nope", Rune: 'x', Size: 1}); err != ErrUnknownGlyph {
		t.Errorf("Release() = %v, want ErrUnknownGlyph", err)
	}
}
