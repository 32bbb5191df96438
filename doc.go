// Package atlaspack implements a dynamic 2D rectangle allocator for
// packing axis-aligned rectangles into a fixed W×H atlas.
//
// # Overview
//
// An AtlasManager sub-divides its atlas into a hierarchical partition tree.
// The root covers the whole atlas; every leaf is either free or allocated;
// every internal node's children tile it exactly. Allocate picks a free
// leaf that can contain the request (see Best-fit selection), splits it into 2 or 3
// children as needed, and returns the placed rectangle. Free releases a
// region and merges newly-all-free sibling groups back together, walking
// toward the root until it hits an ancestor with an allocated or internal
// child.
//
// # Quick Start
//
//	import "github.com/gogpu/atlaspack"
//
//	m, err := atlaspack.New(512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := m.Allocate(64, 32)
//	if r.IsEmpty() {
//	    // no free leaf large enough
//	}
//
//	m.Free(r)
//
// # Best-fit selection
//
// Allocate probes two ordered indices over the free leaves — one ordered
// by (width, height, x, y), the other by (height, width, x, y) — and picks
// whichever admissible candidate has the smaller area, preferring the
// width-ordered candidate on an exact tie.
//
// # Concurrency
//
// AtlasManager is not safe for concurrent use. Callers that share a
// manager across goroutines must serialize access with their own mutex.
//
// # Debug consistency checking
//
// CheckConsistency walks the tree and verifies every structural invariant:
// disjoint cover, unique index keys, leaf/internal partitioning, and area
// conservation. It is O(n) in the number of nodes and is not run
// automatically unless the manager was constructed with
// WithConsistencyChecks(true).
package atlaspack
