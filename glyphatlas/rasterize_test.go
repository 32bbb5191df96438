package glyphatlas

import (
	"image"
	"testing"

	"github.com/gogpu/atlaspack/text"
)

func triangleOutline() *text.GlyphOutline {
	return &text.GlyphOutline{
		Bounds: text.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
		Segments: []text.OutlineSegment{
			{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 10}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 10, Y: 10}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 5, Y: 0}}},
		},
	}
}

func TestRasterizeOutlineFillsShapeNotWholeCell(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 10, 10))
	rasterizeOutline(dst, dst.Bounds(), triangleOutline())

	if dst.AlphaAt(5, 5).A == 0 {
		t.Error("expected a pixel inside the triangle to be filled")
	}
	if dst.AlphaAt(9, 9).A != 0 {
		t.Error("expected a far corner outside the triangle to remain transparent")
	}

	filled := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if dst.AlphaAt(x, y).A != 0 {
				filled++
			}
		}
	}
	if filled == 0 || filled == 100 {
		t.Errorf("expected a partial fill reflecting the triangle, got %d/100 pixels", filled)
	}
}

func TestRasterizeOutlineNilIsNoop(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 4, 4))
	rasterizeOutline(dst, dst.Bounds(), nil)
	for _, p := range dst.Pix {
		if p != 0 {
			t.Fatal("expected nil outline to leave the buffer untouched")
		}
	}
}

func TestAtlasPlaceRasterizesOutlineIntoCell(t *testing.T) {
	a, err := NewAtlas(16, 16)
	if err != nil {
		t.Fatal(err)
	}

	r, ok := a.Place(10, 10, triangleOutline())
	if !ok {
		t.Fatal("expected placement to succeed")
	}

	filled := 0
	for y := int(r.Y); y < int(r.Y+r.Height); y++ {
		for x := int(r.X); x < int(r.X+r.Width); x++ {
			if a.Pix().AlphaAt(x, y).A != 0 {
				filled++
			}
		}
	}
	total := int(r.Width * r.Height)
	if filled == 0 || filled == total {
		t.Errorf("expected the cell to show the triangle's shape, not a blank or solid fill (%d/%d)", filled, total)
	}
}
