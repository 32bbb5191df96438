package atlaspack

import "log/slog"

// AtlasManager sub-divides a fixed W×H atlas into allocated and free
// rectangles. It is not safe for concurrent use; callers sharing a
// manager across goroutines must serialize access themselves.
type AtlasManager struct {
	width, height uint32
	root          *node
	idx           *indices
	cfg           managerConfig
}

// New builds a manager with a single free root leaf covering the whole
// atlas. Zero width or height is rejected as a construction-time contract
// violation rather than producing a manager that can never satisfy any
// allocation.
func New(width, height uint32, opts ...Option) (*AtlasManager, error) {
	if width == 0 {
		return nil, &AtlasConfigError{Field: "width", Reason: "must be > 0"}
	}
	if height == 0 {
		return nil, &AtlasConfigError{Field: "height", Reason: "must be > 0"}
	}

	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &AtlasManager{
		width:  width,
		height: height,
		idx:    newIndices(),
		cfg:    cfg,
	}
	m.root = newLeaf(Region{X: 0, Y: 0, Width: width, Height: height})
	m.idx.RegisterNode(m.root)

	cfg.logger.Debug("atlaspack: manager created", slog.Uint64("width", uint64(width)), slog.Uint64("height", uint64(height)))

	return m, nil
}

// Width returns the atlas width the manager was constructed with.
func (m *AtlasManager) Width() uint32 { return m.width }

// Height returns the atlas height the manager was constructed with.
func (m *AtlasManager) Height() uint32 { return m.height }

// Allocate takes the first free leaf that can hold a w×h rectangle from
// each of the two ordered free indices, picks the one with the smaller
// area (the by-width candidate on a tie), splits it as needed, and returns
// the placed region. A smaller admissible leaf that is neither index's
// first match is not considered. It returns an empty
// Region (IsEmpty() == true) when no free leaf is large enough, or when w
// or h is zero (a caller contract violation, logged and treated as a
// capacity failure rather than a panic).
func (m *AtlasManager) Allocate(w, h uint32) Region {
	if w == 0 || h == 0 {
		m.cfg.logger.Error("atlaspack: Allocate called with zero dimension", slog.Uint64("w", uint64(w)), slog.Uint64("h", uint64(h)))
		return Region{}
	}

	chosen := m.selectCandidate(w, h)
	if chosen == nil {
		m.cfg.logger.Warn("atlaspack: capacity exhausted", slog.Uint64("w", uint64(w)), slog.Uint64("h", uint64(h)))
		return Region{}
	}

	r := chosen.region
	m.idx.UnregisterNode(chosen)

	var placed Region
	switch {
	case r.Width == w && r.Height == h:
		placed = m.allocateExact(chosen)
	case r.Width > w && r.Height == h:
		placed = m.splitWidthExceeds(chosen, w, h)
	case r.Height > h && r.Width == w:
		placed = m.splitHeightExceeds(chosen, w, h)
	default:
		placed = m.splitBothExceed(chosen, w, h)
	}

	m.cfg.logger.Debug("atlaspack: allocated", slog.Uint64("x", uint64(placed.X)), slog.Uint64("y", uint64(placed.Y)), slog.Uint64("w", uint64(placed.Width)), slog.Uint64("h", uint64(placed.Height)))

	m.maybeCheckConsistency("Allocate")
	return placed
}

// selectCandidate implements the best-fit-by-smallest-area rule across
// the two ordered free indices.
func (m *AtlasManager) selectCandidate(w, h uint32) *node {
	a, okA := m.idx.candidateByWidth(w, h)
	b, okB := m.idx.candidateByHeight(w, h)

	switch {
	case okA && okB:
		if a.region.Area() <= b.region.Area() {
			return a
		}
		return b
	case okA:
		return a
	case okB:
		return b
	default:
		return nil
	}
}

func (m *AtlasManager) allocateExact(n *node) Region {
	n.allocated = true
	m.idx.RegisterNode(n)
	return n.region
}

// splitWidthExceeds handles R.width > w, R.height == h: two children
// laid out left-right.
func (m *AtlasManager) splitWidthExceeds(n *node, w, h uint32) Region {
	r := n.region
	c0 := newLeaf(Region{X: r.X, Y: r.Y, Width: w, Height: h})
	c1 := newLeaf(Region{X: r.X + w, Y: r.Y, Width: r.Width - w, Height: r.Height})
	return m.commitSplit(n, c0, c1, nil)
}

// splitHeightExceeds handles R.height > h, R.width == w: two children
// laid out bottom-top.
func (m *AtlasManager) splitHeightExceeds(n *node, w, h uint32) Region {
	r := n.region
	c0 := newLeaf(Region{X: r.X, Y: r.Y, Width: w, Height: h})
	c1 := newLeaf(Region{X: r.X, Y: r.Y + h, Width: r.Width, Height: r.Height - h})
	return m.commitSplit(n, c0, c1, nil)
}

// splitBothExceed handles R.width > w && R.height > h: a three-way split
// whose layout depends on which axis is longer.
func (m *AtlasManager) splitBothExceed(n *node, w, h uint32) Region {
	r := n.region
	c0 := newLeaf(Region{X: r.X, Y: r.Y, Width: w, Height: h})

	var a, b *node
	if r.Width > r.Height {
		// Long axis horizontal: full-height right strip, then a
		// w-wide strip above the placed rectangle.
		a = newLeaf(Region{X: r.X + w, Y: r.Y, Width: r.Width - w, Height: r.Height})
		b = newLeaf(Region{X: r.X, Y: r.Y + h, Width: w, Height: r.Height - h})
	} else {
		// Long axis vertical (or square): full-width top strip, then
		// an h-tall strip to the right of the placed rectangle.
		a = newLeaf(Region{X: r.X, Y: r.Y + h, Width: r.Width, Height: r.Height - h})
		b = newLeaf(Region{X: r.X + w, Y: r.Y, Width: r.Width - w, Height: h})
	}

	return m.commitSplit(n, c0, a, b)
}

// commitSplit attaches children to n (n becomes internal), marks c0
// allocated, and registers every child in the appropriate index. b may be
// nil for a two-way split.
func (m *AtlasManager) commitSplit(n, c0, a, b *node) Region {
	n.addChild(c0)
	n.addChild(a)
	if b != nil {
		n.addChild(b)
	}

	c0.allocated = true
	m.idx.RegisterNode(c0)
	m.idx.RegisterNode(a)
	if b != nil {
		m.idx.RegisterNode(b)
	}

	return c0.region
}

// Free releases a region previously returned by Allocate, then walks
// toward the root merging any sibling group that has become entirely
// free leaves. Calling Free with a region that is not currently allocated
// is a caller contract violation: it is logged and the call becomes a
// no-op.
func (m *AtlasManager) Free(r Region) {
	n, ok := m.idx.lookupAllocated(r)
	if !ok {
		m.cfg.logger.Error("atlaspack: Free called on region not currently allocated",
			slog.Uint64("x", uint64(r.X)), slog.Uint64("y", uint64(r.Y)),
			slog.Uint64("w", uint64(r.Width)), slog.Uint64("h", uint64(r.Height)))
		return
	}

	m.idx.UnregisterNode(n)
	n.allocated = false
	m.idx.RegisterNode(n)

	m.mergeAscending(n.parent)

	m.cfg.logger.Debug("atlaspack: freed", slog.Uint64("x", uint64(r.X)), slog.Uint64("y", uint64(r.Y)))
	m.maybeCheckConsistency("Free")
}

// mergeAscending implements the bottom-up coalescing walk starting at
// parent. It stops at the first ancestor with an allocated or internal
// child, or at the root.
func (m *AtlasManager) mergeAscending(parent *node) {
	for parent != nil {
		allFree := true
		parent.eachChild(func(c *node) {
			if c.isInternal() || c.allocated {
				allFree = false
			}
		})
		if !allFree {
			return
		}

		parent.eachChild(func(c *node) {
			m.idx.UnregisterNode(c)
		})
		parent.clearChildren()
		parent.allocated = false
		m.idx.RegisterNode(parent)

		parent = parent.parent
	}
}

func (m *AtlasManager) maybeCheckConsistency(op string) {
	if !m.cfg.consistencyCheck {
		return
	}
	if err := m.CheckConsistency(); err != nil {
		panic(&ContractError{Op: op, Reason: err.Error()})
	}
}
