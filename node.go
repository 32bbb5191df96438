package atlaspack

// maxChildren bounds the arity of an internal node. Allocate never
// produces more than 3 children from a single split, so a fixed-size
// inline array is sufficient and avoids a slice allocation per split.
const maxChildren = 3

// node is a node in the partition tree. It covers region and is either
// a leaf (numChild == 0, meaningful allocated) or internal
// (numChild in {2, 3}, allocated meaningless).
//
// parent is a non-owning back-reference used only to ascend during the
// bottom-up merge in Free. Ownership flows the other way: a node owns its
// children, and children are only ever detached (never leaked) by merge.
type node struct {
	region   Region
	parent   *node
	children [maxChildren]*node
	numChild int
	allocated bool
}

// newLeaf creates a free leaf covering r with no parent. Used for the root
// and for every child a split creates (addChild sets the parent).
func newLeaf(r Region) *node {
	return &node{region: r}
}

func (n *node) isLeaf() bool {
	return n.numChild == 0
}

func (n *node) isInternal() bool {
	return n.numChild > 0
}

// addChild appends c to n's child list and sets c's parent to n. It does
// not register c in any index; callers do that separately so that the
// tree structure and the index contents can be updated in the order the
// caller needs.
func (n *node) addChild(c *node) {
	c.parent = n
	n.children[n.numChild] = c
	n.numChild++
}

// eachChild calls f for each of n's children in order. f must not mutate
// n's child list.
func (n *node) eachChild(f func(*node)) {
	for i := 0; i < n.numChild; i++ {
		f(n.children[i])
	}
}

// clearChildren detaches all children, turning an internal node back into
// a leaf. Used by merge once every child has been confirmed free and
// unregistered from the indices.
func (n *node) clearChildren() {
	for i := 0; i < n.numChild; i++ {
		n.children[i].parent = nil
		n.children[i] = nil
	}
	n.numChild = 0
}
