package atlaspack

import "fmt"

// CheckConsistency walks the partition tree and verifies every structural
// invariant from the data model: the root covers the whole atlas, every
// internal node's children tile it exactly and without overlap, every
// child lies strictly inside its parent, every leaf is registered in
// exactly the indices it should be, and the sum of leaf areas equals
// width × height.
//
// It is not part of the public allocation contract — it exists for tests
// and for AtlasManager constructed with WithConsistencyChecks(true). It
// is O(n) in the number of tree nodes.
func (m *AtlasManager) CheckConsistency() error {
	if m.root.region != (Region{X: 0, Y: 0, Width: m.width, Height: m.height}) {
		return fmt.Errorf("root region %+v does not cover atlas %dx%d", m.root.region, m.width, m.height)
	}

	var freeLeaves, allocatedLeaves int
	var totalArea uint64

	var walk func(n *node) error
	walk = func(n *node) error {
		if n.isLeaf() {
			if n.allocated {
				allocatedLeaves++
				if _, ok := m.idx.lookupAllocated(n.region); !ok {
					return fmt.Errorf("allocated leaf %+v missing from allocated map", n.region)
				}
			} else {
				freeLeaves++
				if !m.idx.byWidth.Has(n) || !m.idx.byHeight.Has(n) {
					return fmt.Errorf("free leaf %+v missing from a free index", n.region)
				}
			}
			totalArea += n.region.Area()
			return nil
		}

		var childArea uint64
		for i := 0; i < n.numChild; i++ {
			c := n.children[i]
			if c.parent != n {
				return fmt.Errorf("child %+v parent back-reference mismatch", c.region)
			}
			if !strictlyInside(c.region, n.region) {
				return fmt.Errorf("child %+v does not lie inside parent %+v", c.region, n.region)
			}
			for j := i + 1; j < n.numChild; j++ {
				if overlaps(c.region, n.children[j].region) {
					return fmt.Errorf("sibling regions %+v and %+v overlap", c.region, n.children[j].region)
				}
			}
			childArea += c.region.Area()
			if err := walk(c); err != nil {
				return err
			}
		}
		if childArea != n.region.Area() {
			return fmt.Errorf("children of %+v cover area %d, want %d", n.region, childArea, n.region.Area())
		}
		return nil
	}

	if err := walk(m.root); err != nil {
		return err
	}

	if totalArea != uint64(m.width)*uint64(m.height) {
		return fmt.Errorf("leaf areas sum to %d, want %d", totalArea, uint64(m.width)*uint64(m.height))
	}
	if freeLeaves != m.idx.freeLen() {
		return fmt.Errorf("found %d free leaves, free index has %d entries", freeLeaves, m.idx.freeLen())
	}
	if allocatedLeaves != m.idx.allocatedLen() {
		return fmt.Errorf("found %d allocated leaves, allocated map has %d entries", allocatedLeaves, m.idx.allocatedLen())
	}

	return nil
}

func strictlyInside(c, parent Region) bool {
	return c.X >= parent.X && c.Y >= parent.Y &&
		c.X+c.Width <= parent.X+parent.Width &&
		c.Y+c.Height <= parent.Y+parent.Height
}

func overlaps(a, b Region) bool {
	if a.X+a.Width <= b.X || b.X+b.Width <= a.X {
		return false
	}
	if a.Y+a.Height <= b.Y || b.Y+b.Height <= a.Y {
		return false
	}
	return true
}
