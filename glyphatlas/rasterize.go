package glyphatlas

import (
	"image"
	"image/color"
	"sort"

	"github.com/gogpu/atlaspack/text"
)

// curveSteps is the number of line segments used to flatten a quadratic or
// cubic outline curve. Fixed-step flattening is adequate at the small pixel
// sizes glyph cells are placed at; adaptive subdivision isn't worth the
// complexity here.
const curveSteps = 8

type edge struct {
	x0, y0, x1, y1 float32
}

// rasterizeOutline fills dst within rect with an even-odd scanline fill of
// outline, fit so its bounds exactly cover rect. Quad and cubic segments are
// flattened to line edges first.
func rasterizeOutline(dst *image.Alpha, rect image.Rectangle, outline *text.GlyphOutline) {
	if outline == nil || outline.IsEmpty() {
		return
	}

	bw := outline.Bounds.Width()
	bh := outline.Bounds.Height()
	if bw <= 0 || bh <= 0 {
		return
	}

	sx := float32(rect.Dx()) / float32(bw)
	sy := float32(rect.Dy()) / float32(bh)

	// Font outlines use a Y-up convention (baseline at the bottom); image
	// pixel rows increase downward. Scale by -sy and shift down by the
	// cell height so the glyph lands right-side up instead of mirrored.
	fit := outline.
		Translate(float32(-outline.Bounds.MinX), float32(-outline.Bounds.MinY)).
		Transform(text.ScaleTransform(sx, -sy)).
		Transform(text.TranslateTransform(0, float32(rect.Dy())))

	edges := flattenOutline(fit)
	if len(edges) == 0 {
		return
	}

	white := color.Alpha{A: 0xff}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		scan := float32(y-rect.Min.Y) + 0.5
		xs := scanIntersections(edges, scan)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := rect.Min.X + int(xs[i]+0.5)
			x1 := rect.Min.X + int(xs[i+1]+0.5)
			if x0 < rect.Min.X {
				x0 = rect.Min.X
			}
			if x1 > rect.Max.X {
				x1 = rect.Max.X
			}
			for x := x0; x < x1; x++ {
				dst.SetAlpha(x, y, white)
			}
		}
	}
}

// flattenOutline walks an outline's segments into closed polygon edges,
// closing each subpath at the following MoveTo (or at the end).
func flattenOutline(o *text.GlyphOutline) []edge {
	var edges []edge
	var cur, start text.OutlinePoint
	started := false

	closeSubpath := func() {
		if started && cur != start {
			edges = append(edges, edge{cur.X, cur.Y, start.X, start.Y})
		}
	}

	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			closeSubpath()
			cur = seg.Points[0]
			start = cur
			started = true
		case text.OutlineOpLineTo:
			edges = append(edges, edge{cur.X, cur.Y, seg.Points[0].X, seg.Points[0].Y})
			cur = seg.Points[0]
		case text.OutlineOpQuadTo:
			edges = append(edges, flattenQuad(cur, seg.Points[0], seg.Points[1])...)
			cur = seg.Points[1]
		case text.OutlineOpCubicTo:
			edges = append(edges, flattenCubic(cur, seg.Points[0], seg.Points[1], seg.Points[2])...)
			cur = seg.Points[2]
		}
	}
	closeSubpath()
	return edges
}

func flattenQuad(p0, p1, p2 text.OutlinePoint) []edge {
	edges := make([]edge, 0, curveSteps)
	prev := p0
	for i := 1; i <= curveSteps; i++ {
		t := float32(i) / float32(curveSteps)
		mt := 1 - t
		x := mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X
		y := mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y
		edges = append(edges, edge{prev.X, prev.Y, x, y})
		prev = text.OutlinePoint{X: x, Y: y}
	}
	return edges
}

func flattenCubic(p0, p1, p2, p3 text.OutlinePoint) []edge {
	edges := make([]edge, 0, curveSteps)
	prev := p0
	for i := 1; i <= curveSteps; i++ {
		t := float32(i) / float32(curveSteps)
		mt := 1 - t
		x := mt*mt*mt*p0.X + 3*mt*mt*t*p1.X + 3*mt*t*t*p2.X + t*t*t*p3.X
		y := mt*mt*mt*p0.Y + 3*mt*mt*t*p1.Y + 3*mt*t*t*p2.Y + t*t*t*p3.Y
		edges = append(edges, edge{prev.X, prev.Y, x, y})
		prev = text.OutlinePoint{X: x, Y: y}
	}
	return edges
}

// scanIntersections returns the sorted x coordinates where edges cross the
// horizontal line y, for even-odd span filling.
func scanIntersections(edges []edge, y float32) []float32 {
	var xs []float32
	for _, e := range edges {
		if e.y0 == e.y1 {
			continue
		}
		if (y >= e.y0 && y < e.y1) || (y >= e.y1 && y < e.y0) {
			t := (y - e.y0) / (e.y1 - e.y0)
			xs = append(xs, e.x0+t*(e.x1-e.x0))
		}
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	return xs
}
