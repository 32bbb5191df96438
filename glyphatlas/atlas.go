package glyphatlas

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/atlaspack"
	"github.com/gogpu/atlaspack/text"
)

// Atlas owns one AtlasManager and a backing alpha-channel pixel buffer of
// the same dimensions. It serializes access to both with a mutex, since
// AtlasManager itself is not safe for concurrent use.
type Atlas struct {
	mu      sync.Mutex
	manager *atlaspack.AtlasManager
	pix     *image.Alpha
	width   uint32
	height  uint32
}

// NewAtlas creates an atlas of the given dimensions with an empty backing
// buffer.
func NewAtlas(width, height uint32) (*Atlas, error) {
	m, err := atlaspack.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Atlas{
		manager: m,
		pix:     image.NewAlpha(image.Rect(0, 0, int(width), int(height))),
		width:   width,
		height:  height,
	}, nil
}

// Place requests a w×h cell from the underlying allocator. On success it
// rasterizes outline into the cell, scaled and translated to exactly cover
// it. A nil outline (glyphs with no contours, such as space) falls back to
// marking the cell opaque, preserving it as occupied.
func (a *Atlas) Place(w, h uint32, outline *text.GlyphOutline) (atlaspack.Region, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.manager.Allocate(w, h)
	if r.IsEmpty() {
		return atlaspack.Region{}, false
	}

	cell := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
	if outline == nil || outline.IsEmpty() {
		draw.Draw(a.pix, cell, image.NewUniform(color.Alpha{A: 0xff}), image.Point{}, draw.Src)
		return r, true
	}

	rasterizeOutline(a.pix, cell, outline)
	return r, true
}

// Free releases a region previously returned by Place and clears its
// pixels back to transparent.
func (a *Atlas) Free(r atlaspack.Region) {
	a.mu.Lock()
	defer a.mu.Unlock()

	draw.Draw(a.pix, image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height)),
		image.NewUniform(color.Alpha{A: 0}), image.Point{}, draw.Src)

	a.manager.Free(r)
}

// Pix returns the atlas's backing pixel buffer. Callers must not retain a
// reference across concurrent Place/Free calls without their own locking.
func (a *Atlas) Pix() *image.Alpha {
	return a.pix
}
