package atlaspack

import "github.com/google/btree"

// btreeDegree is the branching factor used for both ordered free indices.
// 32 is a reasonable default for in-memory btrees of this size; the
// allocator never holds more than a few thousand free leaves in practice.
const btreeDegree = 32

// indices owns the three lookup structures a partition tree's leaves are
// registered in: the two ordered free-region indices and the allocated
// map. RegisterNode and UnregisterNode are the only places any of the
// three are mutated, per the index maintenance contract.
type indices struct {
	byWidth  *btree.BTreeG[*node]
	byHeight *btree.BTreeG[*node]
	byRegion map[Region]*node // allocated map
}

func newIndices() *indices {
	return &indices{
		byWidth:  btree.NewG(btreeDegree, lessByWidth),
		byHeight: btree.NewG(btreeDegree, lessByHeight),
		byRegion: make(map[Region]*node),
	}
}

// lessByWidth orders free nodes by (width, height, x, y).
func lessByWidth(a, b *node) bool {
	if a.region.Width != b.region.Width {
		return a.region.Width < b.region.Width
	}
	if a.region.Height != b.region.Height {
		return a.region.Height < b.region.Height
	}
	if a.region.X != b.region.X {
		return a.region.X < b.region.X
	}
	return a.region.Y < b.region.Y
}

// lessByHeight orders free nodes by (height, width, x, y).
func lessByHeight(a, b *node) bool {
	if a.region.Height != b.region.Height {
		return a.region.Height < b.region.Height
	}
	if a.region.Width != b.region.Width {
		return a.region.Width < b.region.Width
	}
	if a.region.X != b.region.X {
		return a.region.X < b.region.X
	}
	return a.region.Y < b.region.Y
}

// RegisterNode places a leaf into the allocated map if it is marked
// allocated, otherwise into both free indices. It is a no-op for internal
// nodes — only leaves are ever registered.
func (ix *indices) RegisterNode(n *node) {
	if n.isInternal() {
		return
	}
	if n.allocated {
		ix.byRegion[n.region] = n
		return
	}
	ix.byWidth.ReplaceOrInsert(n)
	ix.byHeight.ReplaceOrInsert(n)
}

// UnregisterNode is the exact inverse of RegisterNode: it removes n from
// whichever index it was registered in, inferred from n.allocated.
func (ix *indices) UnregisterNode(n *node) {
	if n.isInternal() {
		return
	}
	if n.allocated {
		delete(ix.byRegion, n.region)
		return
	}
	ix.byWidth.Delete(n)
	ix.byHeight.Delete(n)
}

// candidateByWidth returns the first free leaf in the by-width index whose
// width >= w and whose height >= h, following spec: find the smallest key
// with width >= w, then advance while height < h.
func (ix *indices) candidateByWidth(w, h uint32) (*node, bool) {
	pivot := &node{region: Region{Width: w}}
	var found *node
	ix.byWidth.AscendGreaterOrEqual(pivot, func(n *node) bool {
		if n.region.Height < h {
			return true // keep advancing
		}
		found = n
		return false // stop, first match
	})
	return found, found != nil
}

// candidateByHeight is the mirror of candidateByWidth over the by-height
// index: find the smallest key with height >= h, then advance while
// width < w.
func (ix *indices) candidateByHeight(w, h uint32) (*node, bool) {
	pivot := &node{region: Region{Height: h}}
	var found *node
	ix.byHeight.AscendGreaterOrEqual(pivot, func(n *node) bool {
		if n.region.Width < w {
			return true
		}
		found = n
		return false
	})
	return found, found != nil
}

// freeLen returns the number of entries in the by-width free index, which
// by invariant 2 of spec.md §8 always equals the by-height index's size.
func (ix *indices) freeLen() int {
	return ix.byWidth.Len()
}

// allocatedLen returns the number of entries in the allocated map.
func (ix *indices) allocatedLen() int {
	return len(ix.byRegion)
}

// lookupAllocated finds the leaf owning region r in the allocated map.
func (ix *indices) lookupAllocated(r Region) (*node, bool) {
	n, ok := ix.byRegion[r]
	return n, ok
}
